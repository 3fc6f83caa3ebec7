package mysql

const upsertListingSQL = `
INSERT INTO listings
  (id, title, description, location, state, price, property_type, bedrooms, bathrooms, area, is_featured, image_url, media)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title         = VALUES(title),
  description   = VALUES(description),
  location      = VALUES(location),
  state         = VALUES(state),
  price         = VALUES(price),
  property_type = VALUES(property_type),
  bedrooms      = VALUES(bedrooms),
  bathrooms     = VALUES(bathrooms),
  area          = VALUES(area),
  is_featured   = VALUES(is_featured),
  image_url     = VALUES(image_url),
  media         = VALUES(media),
  updated_at    = CURRENT_TIMESTAMP
`

const upsertCaseStudySQL = `
INSERT INTO case_studies
  (id, title, location, state, category, description, image_url, year, status, is_visible, display_order)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title         = VALUES(title),
  location      = VALUES(location),
  state         = VALUES(state),
  category      = VALUES(category),
  description   = VALUES(description),
  image_url     = VALUES(image_url),
  year          = VALUES(year),
  status        = VALUES(status),
  is_visible    = VALUES(is_visible),
  display_order = VALUES(display_order),
  updated_at    = CURRENT_TIMESTAMP
`

const upsertROIConfigSQL = `
INSERT INTO roi_configs
  (property_type, roi_min, roi_max, image_url, disclaimer)
VALUES
  (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  roi_min    = VALUES(roi_min),
  roi_max    = VALUES(roi_max),
  image_url  = VALUES(image_url),
  disclaimer = VALUES(disclaimer)
`

const upsertSectionSQL = `
INSERT INTO landing_sections
  (section_key, title, is_visible, sort_order)
VALUES
  (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title      = VALUES(title),
  is_visible = VALUES(is_visible),
  sort_order = VALUES(sort_order)
`

const upsertContentSQL = `
INSERT INTO landing_content
  (id, hero, cta, trust_partners, before_after, marquee)
VALUES
  (1, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  hero           = VALUES(hero),
  cta            = VALUES(cta),
  trust_partners = VALUES(trust_partners),
  before_after   = VALUES(before_after),
  marquee        = VALUES(marquee)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const selectListingsSQL = `
SELECT id, title, description, location, state, price, property_type,
       bedrooms, bathrooms, area, is_featured, image_url, media
FROM listings
ORDER BY id
`

const selectCaseStudiesSQL = `
SELECT id, title, location, state, category, description, image_url,
       year, status, is_visible, display_order
FROM case_studies
ORDER BY display_order, id
`

const selectROIConfigsSQL = `
SELECT property_type, roi_min, roi_max, image_url, disclaimer
FROM roi_configs
ORDER BY property_type
`

const selectSectionsSQL = `
SELECT section_key, title, is_visible, sort_order
FROM landing_sections
ORDER BY sort_order, section_key
`

const selectContentSQL = `
SELECT hero, cta, trust_partners, before_after, marquee
FROM landing_content
WHERE id = 1
`
