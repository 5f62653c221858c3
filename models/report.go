package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportCategory enum. Declaration order is significant: the classifier
// walks categories in this order and the first match wins, so reordering
// changes classification results.
type ReportCategory string

const (
	WaterSupply       ReportCategory = "Water & Supply Management"
	RoadsInfra        ReportCategory = "Roads & Infrastructure"
	WasteSanitation   ReportCategory = "Waste Management & Sanitation"
	ElectricityPower  ReportCategory = "Electricity & Power"
	StreetLighting    ReportCategory = "Street Lighting"
	PublicSafety      ReportCategory = "Public Safety & Hazards"
	DrainageSewerage  ReportCategory = "Drainage & Sewerage"
	ParksPublicSpaces ReportCategory = "Parks & Public Spaces"
	GeneralIssues     ReportCategory = "General Issues"
)

// Categories returns every report category in the fixed enumeration order.
func Categories() []ReportCategory {
	return []ReportCategory{
		WaterSupply,
		RoadsInfra,
		WasteSanitation,
		ElectricityPower,
		StreetLighting,
		PublicSafety,
		DrainageSewerage,
		ParksPublicSpaces,
		GeneralIssues,
	}
}

// CategoryNames returns the category enum as plain strings, in order.
func CategoryNames() []string {
	cats := Categories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, string(c))
	}
	return names
}

// ValidCategory reports whether s is exactly one of the nine categories.
func ValidCategory(s string) bool {
	for _, c := range Categories() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Severity enum
type Severity string

const (
	Low    Severity = "Low"
	Medium Severity = "Medium"
	High   Severity = "High"
)

// ReportStatus enum
type ReportStatus string

const (
	Submitted    ReportStatus = "Submitted"
	Acknowledged ReportStatus = "Acknowledged"
	InProgress   ReportStatus = "In Progress"
	Resolved     ReportStatus = "Resolved"
	Closed       ReportStatus = "Closed"
)

// Statuses returns every report status in workflow order.
func Statuses() []ReportStatus {
	return []ReportStatus{Submitted, Acknowledged, InProgress, Resolved, Closed}
}

// StatusNames returns the status enum as plain strings, in order.
func StatusNames() []string {
	sts := Statuses()
	names := make([]string, 0, len(sts))
	for _, s := range sts {
		names = append(names, string(s))
	}
	return names
}

// ValidStatus reports whether s is exactly one of the workflow statuses.
func ValidStatus(s string) bool {
	for _, st := range Statuses() {
		if string(st) == s {
			return true
		}
	}
	return false
}

// SystemActor is the actor label recorded on history entries written by the
// backend itself rather than a user.
const SystemActor = "system"

// Location is the geo-tag attached to a report.
type Location struct {
	Latitude  float64 `bson:"latitude" json:"lat"`
	Longitude float64 `bson:"longitude" json:"lng"`
	Address   string  `bson:"address" json:"address"`
}

// StatusEntry is one append-only audit record of a status change.
// By is a free actor label: "system" or a user's name.
type StatusEntry struct {
	Status    ReportStatus `bson:"status" json:"status"`
	By        string       `bson:"by" json:"by"`
	Comment   string       `bson:"comment,omitempty" json:"comment,omitempty"`
	Timestamp time.Time    `bson:"timestamp" json:"timestamp"`
}

// Comment is an append-only remark on a report by any authenticated user.
type Comment struct {
	Author    primitive.ObjectID `bson:"author" json:"author"`
	Text      string             `bson:"text" json:"text"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// Report represents a civic issue reported by a user.
//
// Status always mirrors the status of the last StatusHistory entry; the two
// are written together in a single update so they cannot drift. StatusHistory
// and Comments only ever grow.
type Report struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	User          primitive.ObjectID  `bson:"user" json:"user"`
	Description   string              `bson:"description" json:"description"`
	Location      Location            `bson:"location" json:"location"`
	Images        []string            `bson:"images" json:"images"`
	Category      ReportCategory      `bson:"category" json:"category"`
	Severity      Severity            `bson:"severity" json:"severity"`
	Status        ReportStatus        `bson:"status" json:"status"`
	StatusHistory []StatusEntry       `bson:"statusHistory" json:"statusHistory"`
	Comments      []Comment           `bson:"comments" json:"comments"`
	Department    *primitive.ObjectID `bson:"department,omitempty" json:"department,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}
