package domain

import (
	"strings"
	"time"
)

// VisitDetails carries the user-editable fields of a hospital visit.
type VisitDetails struct {
	Date         CalendarDate
	HospitalName string
	DoctorName   string
	SicknessType string
	Details      string
}

type Visit struct {
	id           VisitID
	ownerID      UserID
	date         CalendarDate
	hospitalName string
	doctorName   string
	sicknessType string
	details      string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewVisit(ownerID UserID, details VisitDetails) (*Visit, error) {
	details, err := validateVisitDetails(details)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	v := &Visit{
		id:        NewVisitID(),
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}
	v.apply(details)

	return v, nil
}

func ReconstituteVisit(
	id VisitID,
	ownerID UserID,
	details VisitDetails,
	createdAt time.Time,
	updatedAt time.Time,
) *Visit {
	v := &Visit{
		id:        id,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	v.apply(details)

	return v
}

func (v *Visit) Update(details VisitDetails) error {
	details, err := validateVisitDetails(details)
	if err != nil {
		return err
	}

	v.apply(details)
	v.updatedAt = time.Now()

	return nil
}

func (v *Visit) apply(d VisitDetails) {
	v.date = d.Date
	v.hospitalName = d.HospitalName
	v.doctorName = d.DoctorName
	v.sicknessType = d.SicknessType
	v.details = d.Details
}

func validateVisitDetails(d VisitDetails) (VisitDetails, error) {
	d.HospitalName = strings.TrimSpace(d.HospitalName)
	d.DoctorName = strings.TrimSpace(d.DoctorName)
	d.SicknessType = strings.TrimSpace(d.SicknessType)
	d.Details = strings.TrimSpace(d.Details)

	if d.Date.IsZero() {
		return VisitDetails{}, ErrVisitDateRequired
	}

	if len([]rune(d.HospitalName)) < 2 {
		return VisitDetails{}, ErrHospitalNameTooShort
	}

	if len([]rune(d.DoctorName)) < 2 {
		return VisitDetails{}, ErrDoctorNameTooShort
	}

	if len([]rune(d.SicknessType)) < 2 {
		return VisitDetails{}, ErrSicknessTypeTooShort
	}

	return d, nil
}

func (v *Visit) IsOwnedBy(userID UserID) bool {
	return v.ownerID.Equals(userID)
}

func (v *Visit) ID() VisitID {
	return v.id
}

func (v *Visit) OwnerID() UserID {
	return v.ownerID
}

func (v *Visit) Date() CalendarDate {
	return v.date
}

func (v *Visit) HospitalName() string {
	return v.hospitalName
}

func (v *Visit) DoctorName() string {
	return v.doctorName
}

func (v *Visit) SicknessType() string {
	return v.sicknessType
}

func (v *Visit) Details() string {
	return v.details
}

func (v *Visit) CreatedAt() time.Time {
	return v.createdAt
}

func (v *Visit) UpdatedAt() time.Time {
	return v.updatedAt
}
