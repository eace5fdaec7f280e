package cms

// GROQ queries for each content document type. Projections rename _id to id
// and flatten image assets to their reference so all sources share one shape.
const (
	skillsQuery = `*[_type == "skill"] | order(order asc, name asc) {
  "id": _id, name, category, level, icon, order
}`

	testimonialsQuery = `*[_type == "testimonial"] | order(order asc, author asc) {
  "id": _id, author, role, company, quote, "avatar": avatar.asset._ref, order
}`

	experienceQuery = `*[_type == "experience"] | order(order asc, startDate desc) {
  "id": _id, company, role, location,
  "lat": coordinates.lat, "lng": coordinates.lng,
  startDate, endDate, summary, highlights, technologies, order
}`

	educationQuery = `*[_type == "education"] | order(order asc, startDate desc) {
  "id": _id, institution, degree, field, startDate, endDate, summary, order
}`

	projectsQuery = `*[_type == "project"] | order(order asc, year desc) {
  "id": _id, "slug": slug.current, title, summary,
  "coverImage": coverImage.asset._ref, "gallery": gallery[].asset._ref,
  technologies, repoUrl, liveUrl, featured, year, order
}`

	projectBySlugQuery = `*[_type == "project" && slug.current == $slug][0] {
  "id": _id, "slug": slug.current, title, summary, body,
  "coverImage": coverImage.asset._ref, "gallery": gallery[].asset._ref,
  technologies, repoUrl, liveUrl, featured, year, order
}`

	siteSettingsQuery = `*[_type == "siteSettings"][0] {
  title, tagline, description, bio, email, location,
  "originLat": origin.lat, "originLng": origin.lng,
  "avatar": avatar.asset._ref, resumeUrl,
  socials[]{label, url},
  hero{frameCount, framePattern, width, height}
}`
)

// submissionType is the document type written by the contact form.
const submissionType = "contactSubmission"
