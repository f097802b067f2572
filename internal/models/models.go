// Package models defines the domain records served by the OMEGA content service.
package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// User roles.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
	RoleStaff  = "staff"
)

// Certificate statuses.
const (
	CertStatusValid    = "valid"
	CertStatusExpiring = "expiring"
	CertStatusExpired  = "expired"
)

// Project stage statuses.
const (
	StagePending   = "pending"
	StageActive    = "active"
	StageCompleted = "completed"
)

// Employment types.
const (
	EmploymentFullTime = "Full-time"
	EmploymentPartTime = "Part-time"
	EmploymentContract = "Contract"
)

// Chat message roles.
const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

// CompanyInfo is the singleton company profile record.
type CompanyInfo struct {
	Name        string `json:"name"`
	FullName    string `json:"fullName"`
	Slogan      string `json:"slogan"`
	Established int    `json:"established"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	WhatsApp    string `json:"whatsapp"`
	Address     string `json:"address"`
	Mission     string `json:"mission"`
	Vision      string `json:"vision"`
}

// ServiceItem is one entry in the public services catalog.
type ServiceItem struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	IconName         string   `json:"iconName"`
	Features         []string `json:"features"`
	Image            string   `json:"image,omitempty"`
}

// Validate checks the fields required for a service to render.
func (s ServiceItem) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.Required),
		validation.Field(&s.Title, validation.Required),
	)
}

// InspectionCertificate records an equipment inspection result.
type InspectionCertificate struct {
	ID             string `json:"id"`
	EquipmentName  string `json:"equipmentName"`
	SerialNumber   string `json:"serialNumber"`
	InspectionDate string `json:"inspectionDate"`
	ExpiryDate     string `json:"expiryDate"`
	Status         string `json:"status"`
	PDFURL         string `json:"pdfUrl"`
	ClientID       string `json:"clientId,omitempty"`
}

// Validate checks id and status.
func (c InspectionCertificate) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Status, validation.Required,
			validation.In(CertStatusValid, CertStatusExpiring, CertStatusExpired)),
	)
}

// ProjectStage is one step in a project timeline.
type ProjectStage struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Date   string `json:"date,omitempty"`
}

// ProjectUpdate is a client-visible project progress record.
type ProjectUpdate struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Progress    int            `json:"progress"`
	Status      string         `json:"status"`
	LastUpdated string         `json:"lastUpdated"`
	Stages      []ProjectStage `json:"stages"`
	ClientID    string         `json:"clientId,omitempty"`
}

// BlogPost is a published article. New posts are prepended.
type BlogPost struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	Category string `json:"category"`
}

// JobPosition is an open vacancy.
type JobPosition struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}

// User is the account record of the currently signed-in person.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ChatMessage is a single transcript entry. Transient, never persisted.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
