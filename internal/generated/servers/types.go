// Package servers is the HTTP transport contract: request and response models,
// the handler interface with its parameter-binding wrapper, and the OpenAPI
// document they are derived from.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for MatchStatus.
const (
	MatchStatusAccepted  MatchStatus = "accepted"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusRejected  MatchStatus = "rejected"
)

// Defines values for PackageType.
const (
	PackageTypeCarryOn PackageType = "carry-on"
	PackageTypeChecked PackageType = "checked"
	PackageTypeEither  PackageType = "either"
)

// Defines values for SearchListingsParamsType.
const (
	SearchListingsParamsTypeSender   SearchListingsParamsType = "sender"
	SearchListingsParamsTypeTraveler SearchListingsParamsType = "traveler"
)

// Defines values for GetMatchesParamsType.
const (
	GetMatchesParamsTypeAll      GetMatchesParamsType = "all"
	GetMatchesParamsTypeReceiver GetMatchesParamsType = "receiver"
	GetMatchesParamsTypeSender   GetMatchesParamsType = "sender"
	GetMatchesParamsTypeTraveler GetMatchesParamsType = "traveler"
)

// Airport defines model for Airport.
type Airport struct {
	City    string `json:"city"`
	Code    string `json:"code"`
	Country string `json:"country"`
	Name    string `json:"name"`
}

// AirportsResponse defines model for AirportsResponse.
type AirportsResponse struct {
	Airports []Airport `json:"airports"`
}

// AuthResponse defines model for AuthResponse.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Contact defines model for Contact.
type Contact struct {
	Email string             `json:"email"`
	Id    openapi_types.UUID `json:"id"`
	Name  string             `json:"name"`
	Phone string             `json:"phone"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FlightLookupResponse defines model for FlightLookupResponse.
type FlightLookupResponse struct {
	ArrivalTime        time.Time `json:"arrivalTime"`
	DepartureTime      time.Time `json:"departureTime"`
	DestinationAirport string    `json:"destinationAirport"`

	// Duration Hours
	Duration      float64 `json:"duration"`
	FlightNumber  string  `json:"flightNumber"`
	OriginAirport string  `json:"originAirport"`
	Status        string  `json:"status"`
}

// IssueReport defines model for IssueReport.
type IssueReport struct {
	CreatedAt    time.Time          `json:"createdAt"`
	Description  string             `json:"description"`
	Id           openapi_types.UUID `json:"id"`
	MatchId      openapi_types.UUID `json:"matchId"`
	ReportedById openapi_types.UUID `json:"reportedById"`
}

// IssueReportResponse defines model for IssueReportResponse.
type IssueReportResponse struct {
	IssueReport IssueReport `json:"issueReport"`
}

// ListingOwner defines model for ListingOwner.
type ListingOwner struct {
	Id   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Match defines model for Match.
type Match struct {
	CreatedAt                   time.Time          `json:"createdAt"`
	DestinationDropOffCompleted bool               `json:"destinationDropOffCompleted"`
	DestinationPickUpCompleted  bool               `json:"destinationPickUpCompleted"`
	DropOffCompleted            bool               `json:"dropOffCompleted"`
	Id                          openapi_types.UUID `json:"id"`
	PickUpCompleted             bool               `json:"pickUpCompleted"`
	ReceiverId                  openapi_types.UUID `json:"receiverId"`
	SenderId                    openapi_types.UUID `json:"senderId"`
	SenderListingId             openapi_types.UUID `json:"senderListingId"`
	Status                      MatchStatus        `json:"status"`
	TravelerId                  openapi_types.UUID `json:"travelerId"`
	TravelerListingId           openapi_types.UUID `json:"travelerListingId"`
	UpdatedAt                   time.Time          `json:"updatedAt"`
}

// MatchResponse defines model for MatchResponse.
type MatchResponse struct {
	Match Match `json:"match"`
}

// MatchStatus defines model for MatchStatus.
type MatchStatus string

// MatchView defines model for MatchView.
type MatchView struct {
	CreatedAt                   time.Time          `json:"createdAt"`
	DestinationDropOffCompleted bool               `json:"destinationDropOffCompleted"`
	DestinationPickUpCompleted  bool               `json:"destinationPickUpCompleted"`
	DropOffCompleted            bool               `json:"dropOffCompleted"`
	Id                          openapi_types.UUID `json:"id"`
	PickUpCompleted             bool               `json:"pickUpCompleted"`
	Receiver                    Contact            `json:"receiver"`
	Sender                      Contact            `json:"sender"`
	SenderListing               SenderListing      `json:"senderListing"`
	Status                      MatchStatus        `json:"status"`
	Traveler                    Contact            `json:"traveler"`
	TravelerListing             TravelerListing    `json:"travelerListing"`
	UpdatedAt                   time.Time          `json:"updatedAt"`
}

// MatchesResponse defines model for MatchesResponse.
type MatchesResponse struct {
	Matches []MatchView `json:"matches"`
}

// NewSenderListing defines model for NewSenderListing.
type NewSenderListing struct {
	Description        string      `json:"description"`
	DestinationAirport string      `json:"destinationAirport"`
	OriginAirport      string      `json:"originAirport"`
	PackageType        PackageType `json:"packageType"`
	PackageWeight      float64     `json:"packageWeight"`
	ReceiverEmail      string      `json:"receiverEmail"`
}

// NewTravelerListing defines model for NewTravelerListing.
type NewTravelerListing struct {
	ArrivalTime        time.Time `json:"arrivalTime"`
	AvailableWeight    float64   `json:"availableWeight"`
	DepartureTime      time.Time `json:"departureTime"`
	DestinationAirport string    `json:"destinationAirport"`
	FlightNumber       *string   `json:"flightNumber,omitempty"`
	OriginAirport      string    `json:"originAirport"`
}

// PackageType defines model for PackageType.
type PackageType string

// RegisterRequest defines model for RegisterRequest.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// ReportIssueRequest defines model for ReportIssueRequest.
type ReportIssueRequest struct {
	Description string `json:"description"`
}

// SenderListing defines model for SenderListing.
type SenderListing struct {
	CreatedAt          time.Time          `json:"createdAt"`
	Description        string             `json:"description"`
	DestinationAirport string             `json:"destinationAirport"`
	Id                 openapi_types.UUID `json:"id"`
	IsActive           bool               `json:"isActive"`
	OriginAirport      string             `json:"originAirport"`
	PackageType        PackageType        `json:"packageType"`
	PackageWeight      float64            `json:"packageWeight"`
	ReceiverEmail      *string            `json:"receiverEmail,omitempty"`
	UserId             openapi_types.UUID `json:"userId"`
}

// SenderListingResponse defines model for SenderListingResponse.
type SenderListingResponse struct {
	Listing SenderListing `json:"listing"`
}

// SenderListingsResponse defines model for SenderListingsResponse.
type SenderListingsResponse struct {
	Listings []SenderListing `json:"listings"`
}

// SenderSearchResponse defines model for SenderSearchResponse.
type SenderSearchResponse struct {
	Listings []SenderSearchResult `json:"listings"`
}

// SenderSearchResult defines model for SenderSearchResult.
type SenderSearchResult struct {
	CreatedAt          time.Time          `json:"createdAt"`
	Description        string             `json:"description"`
	DestinationAirport string             `json:"destinationAirport"`
	Id                 openapi_types.UUID `json:"id"`
	IsActive           bool               `json:"isActive"`
	OriginAirport      string             `json:"originAirport"`
	PackageType        PackageType        `json:"packageType"`
	PackageWeight      float64            `json:"packageWeight"`
	ReceiverEmail      *string            `json:"receiverEmail,omitempty"`
	User               ListingOwner       `json:"user"`
	UserId             openapi_types.UUID `json:"userId"`
}

// TravelerListing defines model for TravelerListing.
type TravelerListing struct {
	ArrivalTime        time.Time          `json:"arrivalTime"`
	AvailableWeight    float64            `json:"availableWeight"`
	CreatedAt          time.Time          `json:"createdAt"`
	DepartureTime      time.Time          `json:"departureTime"`
	DestinationAirport string             `json:"destinationAirport"`
	DropOffDeadline    *time.Time         `json:"dropOffDeadline,omitempty"`
	FlightNumber       *string            `json:"flightNumber,omitempty"`
	Id                 openapi_types.UUID `json:"id"`
	IsActive           bool               `json:"isActive"`
	OriginAirport      string             `json:"originAirport"`
	UserId             openapi_types.UUID `json:"userId"`
}

// TravelerListingResponse defines model for TravelerListingResponse.
type TravelerListingResponse struct {
	Listing TravelerListing `json:"listing"`
}

// TravelerListingsResponse defines model for TravelerListingsResponse.
type TravelerListingsResponse struct {
	Listings []TravelerListing `json:"listings"`
}

// TravelerSearchResponse defines model for TravelerSearchResponse.
type TravelerSearchResponse struct {
	Listings []TravelerSearchResult `json:"listings"`
}

// TravelerSearchResult defines model for TravelerSearchResult.
type TravelerSearchResult struct {
	ArrivalTime        time.Time          `json:"arrivalTime"`
	AvailableWeight    float64            `json:"availableWeight"`
	CreatedAt          time.Time          `json:"createdAt"`
	DepartureTime      time.Time          `json:"departureTime"`
	DestinationAirport string             `json:"destinationAirport"`
	DropOffDeadline    *time.Time         `json:"dropOffDeadline,omitempty"`
	FlightNumber       *string            `json:"flightNumber,omitempty"`
	Id                 openapi_types.UUID `json:"id"`
	IsActive           bool               `json:"isActive"`
	OriginAirport      string             `json:"originAirport"`
	User               ListingOwner       `json:"user"`
	UserId             openapi_types.UUID `json:"userId"`
}

// UpdateMatchStatusRequest defines model for UpdateMatchStatusRequest.
type UpdateMatchStatusRequest struct {
	Status string `json:"status"`
}

// User defines model for User.
type User struct {
	Email string             `json:"email"`
	Id    openapi_types.UUID `json:"id"`
	Name  string             `json:"name"`
	Phone string             `json:"phone"`
}

// UserResponse defines model for UserResponse.
type UserResponse struct {
	User User `json:"user"`
}

// MatchID defines model for MatchID.
type MatchID = openapi_types.UUID

// SearchListingsParams defines parameters for SearchListings.
type SearchListingsParams struct {
	Type               SearchListingsParamsType `form:"type" json:"type"`
	OriginAirport      *string                  `form:"originAirport,omitempty" json:"originAirport,omitempty"`
	DestinationAirport *string                  `form:"destinationAirport,omitempty" json:"destinationAirport,omitempty"`
	// Deprecated:
	Origin *string `form:"origin,omitempty" json:"origin,omitempty"`
	// Deprecated:
	Destination *string `form:"destination,omitempty" json:"destination,omitempty"`
}

// SearchListingsParamsType defines parameters for SearchListings.
type SearchListingsParamsType string

// GetMatchesParams defines parameters for GetMatches.
type GetMatchesParams struct {
	Type *GetMatchesParamsType `form:"type,omitempty" json:"type,omitempty"`
}

// GetMatchesParamsType defines parameters for GetMatches.
type GetMatchesParamsType string

// SearchAirportsParams defines parameters for SearchAirports.
type SearchAirportsParams struct {
	Q *string `form:"q,omitempty" json:"q,omitempty"`
}

// LookupFlightParams defines parameters for LookupFlight.
type LookupFlightParams struct {
	FlightNumber       string     `form:"flightNumber" json:"flightNumber"`
	OriginAirport      string     `form:"originAirport" json:"originAirport"`
	DestinationAirport string     `form:"destinationAirport" json:"destinationAirport"`
	DepartureDate      *time.Time `form:"departureDate,omitempty" json:"departureDate,omitempty"`
}

// RegisterUserJSONRequestBody defines body for RegisterUser for application/json ContentType.
type RegisterUserJSONRequestBody = RegisterRequest

// LoginUserJSONRequestBody defines body for LoginUser for application/json ContentType.
type LoginUserJSONRequestBody = LoginRequest

// CreateTravelerListingJSONRequestBody defines body for CreateTravelerListing for application/json ContentType.
type CreateTravelerListingJSONRequestBody = NewTravelerListing

// CreateSenderListingJSONRequestBody defines body for CreateSenderListing for application/json ContentType.
type CreateSenderListingJSONRequestBody = NewSenderListing

// UpdateMatchStatusJSONRequestBody defines body for UpdateMatchStatus for application/json ContentType.
type UpdateMatchStatusJSONRequestBody = UpdateMatchStatusRequest

// ReportMatchIssueJSONRequestBody defines body for ReportMatchIssue for application/json ContentType.
type ReportMatchIssueJSONRequestBody = ReportIssueRequest
