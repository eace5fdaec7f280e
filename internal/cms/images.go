package cms

import (
	"fmt"
	"strings"
)

const imageCDN = "https://cdn.sanity.io/images"

// ImageURL turns an asset reference of the form "image-<id>-<w>x<h>-<ext>"
// into its CDN URL. Absolute URLs pass through unchanged; anything else that
// does not look like an image reference yields "".
func ImageURL(projectID, dataset, ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "/") {
		return ref
	}

	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" || !strings.Contains(parts[2], "x") {
		return ""
	}
	id, dims, ext := parts[1], parts[2], parts[3]
	return fmt.Sprintf("%s/%s/%s/%s-%s.%s", imageCDN, projectID, dataset, id, dims, ext)
}
