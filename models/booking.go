package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Booking statuses as stored in the bookings collection.
const (
	StatusPending    = "Pending"
	StatusApproved   = "Approved"
	StatusRejected   = "Rejected"
	StatusCheckedIn  = "Check In"
	StatusExtended   = "Extended"
	StatusCheckedOut = "Checked-Out"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// Service types.
const (
	ServiceBoarding = "Boarding"
	ServiceGrooming = "Grooming"
)

// Payment statuses.
const (
	PaymentPaid   = "Paid"
	PaymentUnpaid = "Unpaid"
)

// Booking is a service request as stored in the bookings collection.
// Field names mirror the production documents.
type Booking struct {
	ID                 string             `bson:"id" json:"id"`
	UserID             string             `bson:"userId" json:"userId"`
	ServiceType        string             `bson:"serviceType" json:"serviceType"` // "Boarding" or "Grooming"
	Date               string             `bson:"date,omitempty" json:"date,omitempty"` // requested date, "YYYY-MM-DD"
	Time               string             `bson:"time,omitempty" json:"time,omitempty"`
	Status             string             `bson:"status" json:"status"`
	Timestamp          time.Time          `bson:"timestamp" json:"timestamp"` // submission time
	UpdatedAt          time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	PetInformation     PetInformation     `bson:"petInformation" json:"petInformation"`
	OwnerInformation   OwnerInformation   `bson:"ownerInformation" json:"ownerInformation"`
	BoardingDetails    *BoardingDetails   `bson:"boardingDetails,omitempty" json:"boardingDetails,omitempty"`
	GroomingDetails    *GroomingDetails   `bson:"groomingDetails,omitempty" json:"groomingDetails,omitempty"`
	FeedingDetails     *FeedingDetails    `bson:"feedingDetails,omitempty" json:"feedingDetails,omitempty"`
	PaymentDetails     PaymentDetails     `bson:"paymentDetails" json:"paymentDetails"`
	VaccinationRecord  *VaccinationRecord `bson:"vaccinationRecord,omitempty" json:"vaccinationRecord,omitempty"`
	AdminNotes         Notes              `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	Extended           bool               `bson:"extended,omitempty" json:"extended,omitempty"`
	ExtensionType      string             `bson:"extensionType,omitempty" json:"extensionType,omitempty"` // "daily" or "hourly"
	ExtensionCompleted bool               `bson:"extensionCompleted,omitempty" json:"extensionCompleted,omitempty"`
}

type PetInformation struct {
	PetName           string `bson:"petName" json:"petName"`
	PetType           string `bson:"petType,omitempty" json:"petType,omitempty"`
	PetBreed          string `bson:"petBreed,omitempty" json:"petBreed,omitempty"`
	PetAge            string `bson:"petAge,omitempty" json:"petAge,omitempty"`
	PetWeight         string `bson:"petWeight,omitempty" json:"petWeight,omitempty"` // kilograms, free text from the intake form
	PetGender         string `bson:"petGender,omitempty" json:"petGender,omitempty"`
	DateOfBirth       string `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	PetColorsMarkings string `bson:"petColorsMarkings,omitempty" json:"petColorsMarkings,omitempty"`
	VaccinationStatus string `bson:"vaccinationStatus,omitempty" json:"vaccinationStatus,omitempty"`
}

type OwnerInformation struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email,omitempty" json:"email,omitempty"`
	ContactNo string `bson:"contactNo,omitempty" json:"contactNo,omitempty"`
	Address   string `bson:"address,omitempty" json:"address,omitempty"`
}

type BoardingDetails struct {
	CheckInDate         string `bson:"checkInDate,omitempty" json:"checkInDate,omitempty"`   // "YYYY-MM-DD"
	CheckOutDate        string `bson:"checkOutDate,omitempty" json:"checkOutDate,omitempty"` // "YYYY-MM-DD"
	CheckOutTime        string `bson:"checkOutTime,omitempty" json:"checkOutTime,omitempty"` // "HH:MM", set by hourly extensions
	SelectedRoomType    string `bson:"selectedRoomType,omitempty" json:"selectedRoomType,omitempty"`
	BoardingWaiverAgreed bool  `bson:"boardingWaiverAgreed,omitempty" json:"boardingWaiverAgreed,omitempty"`
	HourlyExtension     bool   `bson:"hourlyExtension,omitempty" json:"hourlyExtension,omitempty"`
	ExtensionHours      int    `bson:"extensionHours,omitempty" json:"extensionHours,omitempty"`
}

type GroomingDetails struct {
	GroomingCheckInDate  string `bson:"groomingCheckInDate,omitempty" json:"groomingCheckInDate,omitempty"`
	GroomingWaiverAgreed bool   `bson:"groomingWaiverAgreed,omitempty" json:"groomingWaiverAgreed,omitempty"`
}

type FeedingDetails struct {
	FoodBrand        string `bson:"foodBrand,omitempty" json:"foodBrand,omitempty"`
	NumberOfMeals    string `bson:"numberOfMeals,omitempty" json:"numberOfMeals,omitempty"`
	MorningFeeding   bool   `bson:"morningFeeding,omitempty" json:"morningFeeding,omitempty"`
	MorningTime      string `bson:"morningTime,omitempty" json:"morningTime,omitempty"`
	AfternoonFeeding bool   `bson:"afternoonFeeding,omitempty" json:"afternoonFeeding,omitempty"`
	AfternoonTime    string `bson:"afternoonTime,omitempty" json:"afternoonTime,omitempty"`
	EveningFeeding   bool   `bson:"eveningFeeding,omitempty" json:"eveningFeeding,omitempty"`
	EveningTime      string `bson:"eveningTime,omitempty" json:"eveningTime,omitempty"`
}

type PaymentDetails struct {
	Method            string `bson:"method,omitempty" json:"method,omitempty"`
	AccountNumber     string `bson:"accountNumber,omitempty" json:"accountNumber,omitempty"`
	AccountName       string `bson:"accountName,omitempty" json:"accountName,omitempty"`
	ReceiptImageURL   string `bson:"receiptImageUrl,omitempty" json:"receiptImageUrl,omitempty"`
	DownPaymentAmount Amount `bson:"downPaymentAmount,omitempty" json:"downPaymentAmount,omitempty"`
	PaymentStatus     string `bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
}

type VaccinationRecord struct {
	ImageURL string `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// IsBoarding reports whether the booking is a boarding stay.
func (b *Booking) IsBoarding() bool { return b.ServiceType == ServiceBoarding }

// IsCheckedOut reports whether the stay has been settled.
func (b *Booking) IsCheckedOut() bool {
	return b.Status == StatusCheckedOut || b.Status == StatusCompleted
}

// IsTerminal reports whether no further lifecycle transitions apply.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusRejected || b.Status == StatusCancelled || b.IsCheckedOut()
}

// CanAccept reports whether the booking may be approved or rejected.
func (b *Booking) CanAccept() bool { return b.Status == StatusPending }

// CanCheckIn reports whether the pet may be checked in.
func (b *Booking) CanCheckIn() bool { return b.Status == StatusApproved }

// CanCheckout reports whether the stay may be settled.
func (b *Booking) CanCheckout() bool {
	return b.Status == StatusCheckedIn || b.Status == StatusExtended
}

// HasVaccinationRecord reports whether a vaccination image is on file.
func (b *Booking) HasVaccinationRecord() bool {
	return b.VaccinationRecord != nil && b.VaccinationRecord.ImageURL != ""
}

// EffectiveDate is the date a booking is shown and filtered under:
// boarding check-in first, then grooming date, then the requested date,
// then the submission timestamp.
func (b *Booking) EffectiveDate() string {
	if b.BoardingDetails != nil && b.BoardingDetails.CheckInDate != "" {
		return b.BoardingDetails.CheckInDate
	}
	if b.GroomingDetails != nil && b.GroomingDetails.GroomingCheckInDate != "" {
		return b.GroomingDetails.GroomingCheckInDate
	}
	if b.Date != "" {
		return b.Date
	}
	if !b.Timestamp.IsZero() {
		return b.Timestamp.Format("2006-01-02")
	}
	return ""
}

// OwnerName returns the owner's display name.
func (b *Booking) OwnerName() string {
	return strings.TrimSpace(b.OwnerInformation.FirstName + " " + b.OwnerInformation.LastName)
}

// Notes holds admin notes. Older documents stored a single string where
// newer ones store an array; decoding accepts both and always yields a slice.
type Notes []string

func (n *Notes) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*n = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return fmt.Errorf("adminNotes: expected string or array: %w", err)
	}
	*n = Notes{one}
	return nil
}

func (n *Notes) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*n = nil
		return nil
	case bsontype.String:
		var one string
		if err := bson.UnmarshalValue(t, data, &one); err != nil {
			return err
		}
		*n = Notes{one}
		return nil
	default:
		var many []string
		if err := bson.UnmarshalValue(t, data, &many); err != nil {
			return fmt.Errorf("adminNotes: expected string or array: %w", err)
		}
		*n = many
		return nil
	}
}

func (n Notes) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue([]string(n))
}

// Amount is a monetary value that tolerates the intake form storing
// numbers as strings. Unparseable values decode to zero.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*a = 0
		return nil
	}
	*a = parseAmount(s)
	return nil
}

func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*a = 0
		return nil
	case bsontype.String:
		var s string
		if err := bson.UnmarshalValue(t, data, &s); err != nil {
			return err
		}
		*a = parseAmount(s)
		return nil
	default:
		var f float64
		if err := bson.UnmarshalValue(t, data, &f); err != nil {
			*a = 0
			return nil
		}
		*a = Amount(f)
		return nil
	}
}

func (a Amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(float64(a))
}

func parseAmount(s string) Amount {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f != f { // reject NaN
		return 0
	}
	return Amount(f)
}
