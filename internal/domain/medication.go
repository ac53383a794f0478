package domain

import (
	"strings"
	"time"
)

// MedicationDetails carries the user-editable fields of a medication.
type MedicationDetails struct {
	Name             string
	Dosage           string
	Frequency        string
	Reason           string
	StartDate        *CalendarDate
	EndDate          *CalendarDate
	RemindersEnabled bool
}

type Medication struct {
	id               MedicationID
	ownerID          UserID
	name             string
	dosage           string
	frequency        string
	reason           string
	startDate        *CalendarDate
	endDate          *CalendarDate
	remindersEnabled bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewMedication(ownerID UserID, details MedicationDetails) (*Medication, error) {
	details, err := validateDetails(details)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	m := &Medication{
		id:        NewMedicationID(),
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}
	m.apply(details)

	return m, nil
}

func ReconstituteMedication(
	id MedicationID,
	ownerID UserID,
	details MedicationDetails,
	createdAt time.Time,
	updatedAt time.Time,
) *Medication {
	m := &Medication{
		id:        id,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	m.apply(details)

	return m
}

// Update replaces every editable field, including the reminder flag.
func (m *Medication) Update(details MedicationDetails) error {
	details, err := validateDetails(details)
	if err != nil {
		return err
	}

	m.apply(details)
	m.updatedAt = time.Now()

	return nil
}

func (m *Medication) apply(d MedicationDetails) {
	m.name = d.Name
	m.dosage = d.Dosage
	m.frequency = d.Frequency
	m.reason = d.Reason
	m.startDate = copyDate(d.StartDate)
	m.endDate = copyDate(d.EndDate)
	m.remindersEnabled = d.RemindersEnabled
}

func validateDetails(d MedicationDetails) (MedicationDetails, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Dosage = strings.TrimSpace(d.Dosage)
	d.Frequency = strings.TrimSpace(d.Frequency)
	d.Reason = strings.TrimSpace(d.Reason)

	if len([]rune(d.Name)) < 2 {
		return MedicationDetails{}, ErrMedicationNameTooShort
	}

	if d.Dosage == "" {
		return MedicationDetails{}, ErrDosageRequired
	}

	if len([]rune(d.Frequency)) < 2 {
		return MedicationDetails{}, ErrFrequencyTooShort
	}

	if d.StartDate != nil && d.EndDate != nil && d.EndDate.Before(*d.StartDate) {
		return MedicationDetails{}, ErrEndBeforeStart
	}

	return d, nil
}

func copyDate(d *CalendarDate) *CalendarDate {
	if d == nil {
		return nil
	}

	c := *d

	return &c
}

func (m *Medication) IsOwnedBy(userID UserID) bool {
	return m.ownerID.Equals(userID)
}

func (m *Medication) ID() MedicationID {
	return m.id
}

func (m *Medication) OwnerID() UserID {
	return m.ownerID
}

func (m *Medication) Name() string {
	return m.name
}

func (m *Medication) Dosage() string {
	return m.dosage
}

func (m *Medication) Frequency() string {
	return m.frequency
}

func (m *Medication) Reason() string {
	return m.reason
}

func (m *Medication) StartDate() *CalendarDate {
	return copyDate(m.startDate)
}

func (m *Medication) EndDate() *CalendarDate {
	return copyDate(m.endDate)
}

func (m *Medication) RemindersEnabled() bool {
	return m.remindersEnabled
}

func (m *Medication) Details() MedicationDetails {
	return MedicationDetails{
		Name:             m.name,
		Dosage:           m.dosage,
		Frequency:        m.frequency,
		Reason:           m.reason,
		StartDate:        copyDate(m.startDate),
		EndDate:          copyDate(m.endDate),
		RemindersEnabled: m.remindersEnabled,
	}
}

func (m *Medication) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Medication) UpdatedAt() time.Time {
	return m.updatedAt
}
