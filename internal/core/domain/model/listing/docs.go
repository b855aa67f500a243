// Package listing models the two sides of the marketplace.
//
// The package includes:
//   - TravelerListing: spare baggage capacity on an upcoming flight
//   - SenderListing: a package that needs to travel, with a named receiver
//   - PackageType: how the package may be carried (carry-on, checked, either)
//
// Key business rules:
//   - Airport codes are three uppercase letters; weights are strictly positive
//   - A traveler listing departs at least MinimumLeadTime after creation and
//     arrives after it departs; this is checked once, at creation
//   - A sender listing always names a receiver who is a different user than the sender
//   - Route, weight and time fields never change; only IsActive toggles
package listing
