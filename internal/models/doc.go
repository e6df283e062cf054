// Package models defines the core domain models for Little Wardrobe.
//
// # Models
//
//   - ClothingItem: one garment in the child's wardrobe
//   - ChildProfile: the child the wardrobe belongs to (only the birth date
//     matters to the recommendation engine)
//   - Settings: household preferences such as the weather location
//   - WeatherReport: current conditions from the weather provider
//   - ItemAnalysis: structured metadata returned by the image tagging service
//
// # Design Principles
//
// 1. **Plain data**: models carry no behavior beyond small lookups; the
// outgrowth and outfit logic lives in package wardrobe and only reads them.
// 2. **Closed vocabularies**: categories and seasons are string-backed enums
// so they persist and serialize as readable values.
// 3. **IDs as strings**: items are referenced by UUID strings, never pointers.
package models
