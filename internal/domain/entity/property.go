package entity

import (
	"fmt"
	"time"
)

type PropertyType string

const (
	PropertyTypePlot           PropertyType = "Plot"
	PropertyTypeHouse          PropertyType = "House"
	PropertyTypeApartment      PropertyType = "Apartment"
	PropertyTypeShop           PropertyType = "Shop"
	PropertyTypeCommercialPlot PropertyType = "Commercial Plot"
	PropertyTypeFarmLand       PropertyType = "Farm Land"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypePlot, PropertyTypeHouse, PropertyTypeApartment,
		PropertyTypeShop, PropertyTypeCommercialPlot, PropertyTypeFarmLand:
		return true
	}
	return false
}

type Facing string

const (
	FacingNorth     Facing = "North"
	FacingSouth     Facing = "South"
	FacingEast      Facing = "East"
	FacingWest      Facing = "West"
	FacingNorthEast Facing = "North-East"
	FacingSouthEast Facing = "South-East"
	FacingNorthWest Facing = "North-West"
	FacingSouthWest Facing = "South-West"
)

func (f Facing) Valid() bool {
	switch f {
	case FacingNorth, FacingSouth, FacingEast, FacingWest,
		FacingNorthEast, FacingSouthEast, FacingNorthWest, FacingSouthWest:
		return true
	}
	return false
}

type Furnished string

const (
	FurnishedFull Furnished = "Furnished"
	FurnishedSemi Furnished = "Semi-Furnished"
	FurnishedNone Furnished = "Unfurnished"
)

func (f Furnished) Valid() bool {
	return f == FurnishedFull || f == FurnishedSemi || f == FurnishedNone
}

type PossessionStatus string

const (
	PossessionUnderConstruction PossessionStatus = "Under Construction"
	PossessionReadyToMove       PossessionStatus = "Ready to Move"
)

func (p PossessionStatus) Valid() bool {
	return p == PossessionUnderConstruction || p == PossessionReadyToMove
}

type LandmarkType string

const (
	LandmarkPark     LandmarkType = "Park"
	LandmarkSchool   LandmarkType = "School"
	LandmarkHospital LandmarkType = "Hospital"
	LandmarkMall     LandmarkType = "Mall"
	LandmarkMetro    LandmarkType = "Metro"
	LandmarkAirport  LandmarkType = "Airport"
)

type Importance string

const (
	ImportanceHigh   Importance = "High"
	ImportanceMedium Importance = "Medium"
	ImportanceLow    Importance = "Low"
)

type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

type OwnerType string

const (
	OwnerTypeDeveloper OwnerType = "Developer"
	OwnerTypeOwner     OwnerType = "Owner"
	OwnerTypeBroker    OwnerType = "Broker"
)

func (o OwnerType) Valid() bool {
	return o == OwnerTypeDeveloper || o == OwnerTypeOwner || o == OwnerTypeBroker
}

type Status string

const (
	StatusActive      Status = "Active"
	StatusSold        Status = "Sold"
	StatusRented      Status = "Rented"
	StatusInactive    Status = "Inactive"
	StatusUnderReview Status = "Under Review"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusSold, StatusRented, StatusInactive, StatusUnderReview:
		return true
	}
	return false
}

type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `bson:"longitude" json:"longitude" validate:"gte=-180,lte=180"`
}

type Location struct {
	City        string      `bson:"city" json:"city" validate:"required"`
	Area        string      `bson:"area" json:"area" validate:"required"`
	Address     string      `bson:"address" json:"address" validate:"required"`
	Pincode     string      `bson:"pincode" json:"pincode" validate:"required"`
	State       string      `bson:"state" json:"state" validate:"required"`
	Country     string      `bson:"country" json:"country" validate:"required"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates"`
}

type Landmark struct {
	Name     string       `bson:"name" json:"name" validate:"required"`
	Distance float64      `bson:"distance" json:"distance" validate:"gte=0"` // km
	Type     LandmarkType `bson:"type" json:"type" validate:"required,oneof=Park School Hospital Mall Metro Airport"`
}

type Budget struct {
	Amount       int64  `bson:"amount" json:"amount" validate:"required,gt=0"` // rupees
	Currency     string `bson:"currency" json:"currency"`
	Negotiable   bool   `bson:"negotiable" json:"negotiable"`
	PricePerSqft *int64 `bson:"price_per_sqft,omitempty" json:"price_per_sqft,omitempty"`
}

type MarketPrice struct {
	EstimatedValue   int64     `bson:"estimated_value" json:"estimated_value"`
	LastUpdated      time.Time `bson:"last_updated" json:"last_updated"`
	AppreciationRate float64   `bson:"appreciation_rate" json:"appreciation_rate"` // % per year
}

// Specifications keeps every field optional so a partial update can tell
// "leave unchanged" apart from "set to zero".
type Specifications struct {
	PlotSize         *int              `bson:"plot_size,omitempty" json:"plot_size,omitempty"`         // sq yards
	BuiltUpArea      *int              `bson:"built_up_area,omitempty" json:"built_up_area,omitempty"` // sq ft
	CarpetArea       *int              `bson:"carpet_area,omitempty" json:"carpet_area,omitempty"`     // sq ft
	Bedrooms         *int              `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms        *int              `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Balconies        *int              `bson:"balconies,omitempty" json:"balconies,omitempty"`
	Parking          *int              `bson:"parking,omitempty" json:"parking,omitempty"`
	Floors           *int              `bson:"floors,omitempty" json:"floors,omitempty"`
	FloorNumber      *int              `bson:"floor_number,omitempty" json:"floor_number,omitempty"`
	Facing           *Facing           `bson:"facing,omitempty" json:"facing,omitempty" validate:"omitempty,oneof=North South East West North-East South-East North-West South-West"`
	Furnished        *Furnished        `bson:"furnished,omitempty" json:"furnished,omitempty" validate:"omitempty,oneof=Furnished Semi-Furnished Unfurnished"`
	PossessionStatus *PossessionStatus `bson:"possession_status,omitempty" json:"possession_status,omitempty" validate:"omitempty,oneof='Under Construction' 'Ready to Move'"`
}

type Benefit struct {
	Category    string     `bson:"category" json:"category" validate:"required"`
	Description string     `bson:"description" json:"description" validate:"required"`
	Importance  Importance `bson:"importance" json:"importance" validate:"required,oneof=High Medium Low"`
}

type Drawback struct {
	Category    string   `bson:"category" json:"category" validate:"required"`
	Description string   `bson:"description" json:"description" validate:"required"`
	Severity    Severity `bson:"severity" json:"severity" validate:"required,oneof=High Medium Low"`
}

type SimilarProperty struct {
	PropertyID      string  `bson:"property_id" json:"property_id" validate:"required"`
	Name            string  `bson:"name" json:"name" validate:"required"`
	SimilarityScore float64 `bson:"similarity_score" json:"similarity_score" validate:"gte=0,lte=1"`
	PriceDifference int64   `bson:"price_difference" json:"price_difference"`
}

type VerificationDocument struct {
	Type        string `bson:"type" json:"type" validate:"required"`
	DocumentURL string `bson:"document_url" json:"document_url" validate:"required,url"`
	Verified    bool   `bson:"verified" json:"verified"`
}

type Verification struct {
	VerifiedBy            string                 `bson:"verified_by" json:"verified_by" validate:"required"`
	VerifiedAt            time.Time              `bson:"verified_at" json:"verified_at"`
	VerificationDocuments []VerificationDocument `bson:"verification_documents" json:"verification_documents" validate:"dive"`
}

type Contact struct {
	Phone   string  `bson:"phone" json:"phone" validate:"required"`
	Email   string  `bson:"email" json:"email" validate:"required,email"`
	Website *string `bson:"website,omitempty" json:"website,omitempty" validate:"omitempty,url"`
}

type Owner struct {
	Type    OwnerType `bson:"type" json:"type" validate:"required,oneof=Developer Owner Broker"`
	Name    string    `bson:"name" json:"name" validate:"required"`
	Contact Contact   `bson:"contact" json:"contact"`
	ReraID  *string   `bson:"rera_id,omitempty" json:"rera_id,omitempty"`
}

type RatingDistribution struct {
	Star5 int `bson:"5_star" json:"5_star" validate:"gte=0"`
	Star4 int `bson:"4_star" json:"4_star" validate:"gte=0"`
	Star3 int `bson:"3_star" json:"3_star" validate:"gte=0"`
	Star2 int `bson:"2_star" json:"2_star" validate:"gte=0"`
	Star1 int `bson:"1_star" json:"1_star" validate:"gte=0"`
}

type Ratings struct {
	Average      float64            `bson:"average" json:"average" validate:"gte=0,lte=5"`
	Count        int                `bson:"count" json:"count" validate:"gte=0"`
	Distribution RatingDistribution `bson:"distribution" json:"distribution"`
}

type Comment struct {
	UserID        string    `bson:"user_id" json:"user_id" validate:"required"`
	UserName      string    `bson:"user_name" json:"user_name" validate:"required"`
	Rating        int       `bson:"rating" json:"rating" validate:"gte=1,lte=5"`
	Comment       string    `bson:"comment" json:"comment" validate:"required"`
	PostedAt      time.Time `bson:"posted_at" json:"posted_at"`
	HelpfulCount  int       `bson:"helpful_count" json:"helpful_count" validate:"gte=0"`
	VerifiedBuyer bool      `bson:"verified_buyer" json:"verified_buyer"`
}

type Image struct {
	URL       string `bson:"url" json:"url" validate:"required,url"`
	Type      string `bson:"type" json:"type" validate:"required"`
	Caption   string `bson:"caption" json:"caption"`
	IsPrimary bool   `bson:"is_primary" json:"is_primary"`
}

type Video struct {
	URL      string `bson:"url" json:"url" validate:"required,url"`
	Type     string `bson:"type" json:"type" validate:"required"`
	Duration int    `bson:"duration" json:"duration" validate:"gte=0"` // seconds
}

type Meta struct {
	Title       string   `bson:"title" json:"title" validate:"required"`
	Description string   `bson:"description" json:"description" validate:"required"`
	Keywords    []string `bson:"keywords" json:"keywords"`
}

type AIMetadata struct {
	DescriptionGenerated bool     `bson:"description_generated" json:"description_generated"`
	PricePrediction      int64    `bson:"price_prediction" json:"price_prediction"`
	InvestmentScore      float64  `bson:"investment_score" json:"investment_score"`
	Tags                 []string `bson:"tags" json:"tags"`
}

type Property struct {
	ID string `bson:"_id,omitempty" json:"_id,omitempty"`

	Name         string       `bson:"name" json:"name"`
	PropertyType PropertyType `bson:"property_type" json:"property_type"`
	Age          int          `bson:"age" json:"age"` // years, 0 for under construction

	Location  Location   `bson:"location" json:"location"`
	Landmarks []Landmark `bson:"landmarks" json:"landmarks"`

	Budget      Budget       `bson:"budget" json:"budget"`
	MarketPrice *MarketPrice `bson:"market_price,omitempty" json:"market_price,omitempty"`

	Specifications Specifications `bson:"specifications" json:"specifications"`

	Benefits  []Benefit  `bson:"benefits" json:"benefits"`
	Drawbacks []Drawback `bson:"drawbacks" json:"drawbacks"`

	SimilarProperties []SimilarProperty `bson:"similar_properties" json:"similar_properties"`

	IsVerified   bool          `bson:"isVerified" json:"isVerified"`
	Verification *Verification `bson:"verification,omitempty" json:"verification,omitempty"`

	Owner Owner `bson:"owner" json:"owner"`

	Ratings   *Ratings `bson:"ratings,omitempty" json:"ratings,omitempty"`
	Likes     int      `bson:"likes" json:"likes"`
	Views     int      `bson:"views" json:"views"`
	Inquiries int      `bson:"inquiries" json:"inquiries"`

	Comments []Comment `bson:"comments" json:"comments"`

	Images []Image `bson:"images" json:"images"`
	Videos []Video `bson:"videos" json:"videos"`

	Slug string `bson:"slug" json:"slug"`
	Meta Meta   `bson:"meta" json:"meta"`

	Status    Status     `bson:"status" json:"status"`
	Featured  bool       `bson:"featured" json:"featured"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty" json:"expires_at,omitempty"`

	AIMetadata *AIMetadata `bson:"ai_metadata,omitempty" json:"ai_metadata,omitempty"`
}

// CheckEnums reports the first enumerated field holding a value outside its
// closed set. Stored documents are open strings, so this is the guard between
// the store and the typed model.
func (p *Property) CheckEnums() error {
	if !p.PropertyType.Valid() {
		return fmt.Errorf("unknown property_type %q", p.PropertyType)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("unknown status %q", p.Status)
	}
	if !p.Owner.Type.Valid() {
		return fmt.Errorf("unknown owner type %q", p.Owner.Type)
	}
	if f := p.Specifications.Facing; f != nil && !f.Valid() {
		return fmt.Errorf("unknown facing %q", *f)
	}
	if f := p.Specifications.Furnished; f != nil && !f.Valid() {
		return fmt.Errorf("unknown furnished %q", *f)
	}
	if ps := p.Specifications.PossessionStatus; ps != nil && !ps.Valid() {
		return fmt.Errorf("unknown possession_status %q", *ps)
	}
	return nil
}

// PropertyCreate is the request shape for new properties; the store assigns
// the identifier and timestamps.
type PropertyCreate struct {
	Name         string       `json:"name" validate:"required"`
	PropertyType PropertyType `json:"property_type" validate:"required,oneof=Plot House Apartment Shop 'Commercial Plot' 'Farm Land'"`
	Age          int          `json:"age" validate:"gte=0"`

	Location  Location   `json:"location"`
	Landmarks []Landmark `json:"landmarks" validate:"dive"`

	Budget      Budget       `json:"budget"`
	MarketPrice *MarketPrice `json:"market_price,omitempty"`

	Specifications Specifications `json:"specifications"`

	Benefits  []Benefit  `json:"benefits" validate:"dive"`
	Drawbacks []Drawback `json:"drawbacks" validate:"dive"`

	SimilarProperties []SimilarProperty `json:"similar_properties" validate:"dive"`

	IsVerified   bool          `json:"isVerified"`
	Verification *Verification `json:"verification,omitempty"`

	Owner Owner `json:"owner"`

	Ratings   *Ratings `json:"ratings,omitempty"`
	Likes     int      `json:"likes" validate:"gte=0"`
	Views     int      `json:"views" validate:"gte=0"`
	Inquiries int      `json:"inquiries" validate:"gte=0"`

	Comments []Comment `json:"comments" validate:"dive"`

	Images []Image `json:"images" validate:"dive"`
	Videos []Video `json:"videos" validate:"dive"`

	Slug string `json:"slug" validate:"required"`
	Meta Meta   `json:"meta"`

	Status    Status     `json:"status" validate:"omitempty,oneof=Active Sold Rented Inactive 'Under Review'"`
	Featured  bool       `json:"featured"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	AIMetadata *AIMetadata `json:"ai_metadata,omitempty"`
}

// PropertyUpdate carries partial mutations. Field presence is significant:
// a nil pointer means "leave unchanged", a non-nil pointer is applied even
// when it points at a zero value.
type PropertyUpdate struct {
	Name         *string       `json:"name,omitempty" validate:"omitempty,min=1"`
	PropertyType *PropertyType `json:"property_type,omitempty" validate:"omitempty,oneof=Plot House Apartment Shop 'Commercial Plot' 'Farm Land'"`
	Age          *int          `json:"age,omitempty" validate:"omitempty,gte=0"`

	Location  *Location   `json:"location,omitempty"`
	Landmarks *[]Landmark `json:"landmarks,omitempty" validate:"omitempty,dive"`

	Budget      *Budget      `json:"budget,omitempty"`
	MarketPrice *MarketPrice `json:"market_price,omitempty"`

	Specifications *Specifications `json:"specifications,omitempty"`

	Benefits  *[]Benefit  `json:"benefits,omitempty" validate:"omitempty,dive"`
	Drawbacks *[]Drawback `json:"drawbacks,omitempty" validate:"omitempty,dive"`

	SimilarProperties *[]SimilarProperty `json:"similar_properties,omitempty" validate:"omitempty,dive"`

	IsVerified   *bool         `json:"isVerified,omitempty"`
	Verification *Verification `json:"verification,omitempty"`

	Owner *Owner `json:"owner,omitempty"`

	Ratings   *Ratings `json:"ratings,omitempty"`
	Likes     *int     `json:"likes,omitempty" validate:"omitempty,gte=0"`
	Views     *int     `json:"views,omitempty" validate:"omitempty,gte=0"`
	Inquiries *int     `json:"inquiries,omitempty" validate:"omitempty,gte=0"`

	Comments *[]Comment `json:"comments,omitempty" validate:"omitempty,dive"`

	Images *[]Image `json:"images,omitempty" validate:"omitempty,dive"`
	Videos *[]Video `json:"videos,omitempty" validate:"omitempty,dive"`

	Slug *string `json:"slug,omitempty" validate:"omitempty,min=1"`
	Meta *Meta   `json:"meta,omitempty"`

	Status    *Status    `json:"status,omitempty" validate:"omitempty,oneof=Active Sold Rented Inactive 'Under Review'"`
	Featured  *bool      `json:"featured,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	AIMetadata *AIMetadata `json:"ai_metadata,omitempty"`
}

// IsEmpty reports whether no field was supplied at all.
func (u *PropertyUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.PropertyType == nil &&
		u.Age == nil &&
		u.Location == nil &&
		u.Landmarks == nil &&
		u.Budget == nil &&
		u.MarketPrice == nil &&
		u.Specifications == nil &&
		u.Benefits == nil &&
		u.Drawbacks == nil &&
		u.SimilarProperties == nil &&
		u.IsVerified == nil &&
		u.Verification == nil &&
		u.Owner == nil &&
		u.Ratings == nil &&
		u.Likes == nil &&
		u.Views == nil &&
		u.Inquiries == nil &&
		u.Comments == nil &&
		u.Images == nil &&
		u.Videos == nil &&
		u.Slug == nil &&
		u.Meta == nil &&
		u.Status == nil &&
		u.Featured == nil &&
		u.ExpiresAt == nil &&
		u.AIMetadata == nil
}
