package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-medication-remind/internal/testutil"
)

func newMedication(t *testing.T, owner, name string, reminders bool, start *domain.CalendarDate) *domain.Medication {
	t.Helper()

	ownerID, err := domain.UserIDFromString(owner)
	require.NoError(t, err)

	m, err := domain.NewMedication(ownerID, domain.MedicationDetails{
		Name:             name,
		Dosage:           "10mg",
		Frequency:        "once daily",
		StartDate:        start,
		RemindersEnabled: reminders,
	})
	require.NoError(t, err)

	return m
}

func TestMedicationRepository(t *testing.T) {
	testutil.SkipIfShort(t)

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewMedicationRepository(testDB.DB)
	ctx := context.Background()

	t.Run("save and find by id", func(t *testing.T) {
		testDB.CleanTable(t)

		start := domain.MustCalendarDate(2024, time.March, 1)
		m := newMedication(t, "alice", "Lisinopril", true, &start)

		require.NoError(t, repo.Save(ctx, m))

		found, err := repo.FindByID(ctx, m.ID())
		require.NoError(t, err)

		assert.Equal(t, "Lisinopril", found.Name())
		assert.True(t, found.StartDate().Equals(start))
		assert.Nil(t, found.EndDate())
		assert.True(t, found.IsOwnedBy(m.OwnerID()))
	})

	t.Run("find by id not found", func(t *testing.T) {
		testDB.CleanTable(t)

		_, err := repo.FindByID(ctx, domain.NewMedicationID())

		assert.ErrorIs(t, err, domain.ErrMedicationNotFound)
	})

	t.Run("find by owner and reminder flag", func(t *testing.T) {
		testDB.CleanTable(t)

		require.NoError(t, repo.Save(ctx, newMedication(t, "alice", "Lisinopril", true, nil)))
		require.NoError(t, repo.Save(ctx, newMedication(t, "alice", "Ibuprofen", false, nil)))
		require.NoError(t, repo.Save(ctx, newMedication(t, "bob", "Metformin", true, nil)))

		alice, err := domain.UserIDFromString("alice")
		require.NoError(t, err)

		all, err := repo.FindByOwnerID(ctx, alice)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		enabled, err := repo.FindReminderEnabledByOwnerID(ctx, alice)
		require.NoError(t, err)
		require.Len(t, enabled, 1)
		assert.Equal(t, "Lisinopril", enabled[0].Name())
	})

	t.Run("update clears dates and toggles reminders", func(t *testing.T) {
		testDB.CleanTable(t)

		start := domain.MustCalendarDate(2024, time.March, 1)
		m := newMedication(t, "alice", "Lisinopril", true, &start)
		require.NoError(t, repo.Save(ctx, m))

		details := m.Details()
		details.StartDate = nil
		details.RemindersEnabled = false
		require.NoError(t, m.Update(details))
		require.NoError(t, repo.Update(ctx, m))

		found, err := repo.FindByID(ctx, m.ID())
		require.NoError(t, err)
		assert.Nil(t, found.StartDate())
		assert.False(t, found.RemindersEnabled())
	})

	t.Run("update missing record", func(t *testing.T) {
		testDB.CleanTable(t)

		err := repo.Update(ctx, newMedication(t, "alice", "Lisinopril", true, nil))

		assert.ErrorIs(t, err, domain.ErrMedicationNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		testDB.CleanTable(t)

		m := newMedication(t, "alice", "Lisinopril", true, nil)
		require.NoError(t, repo.Save(ctx, m))

		require.NoError(t, repo.Delete(ctx, m.ID()))
		require.NoError(t, repo.Delete(ctx, m.ID()))

		_, err := repo.FindByID(ctx, m.ID())
		assert.ErrorIs(t, err, domain.ErrMedicationNotFound)
	})
}

func TestProfileRepository(t *testing.T) {
	testutil.SkipIfShort(t)

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewProfileRepository(testDB.DB)
	ctx := context.Background()

	alice, err := domain.UserIDFromString("alice")
	require.NoError(t, err)

	bob, err := domain.UserIDFromString("bob")
	require.NoError(t, err)

	t.Run("save upserts", func(t *testing.T) {
		testDB.CleanTable(t)

		profile := domain.NewProfile(alice, "Alice")
		require.NoError(t, repo.Save(ctx, profile))

		token, err := domain.NewPushToken("token-1")
		require.NoError(t, err)
		profile.RegisterPushToken(token)
		require.NoError(t, repo.Save(ctx, profile))

		found, err := repo.FindByUserID(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, "token-1", found.PushToken().String())
		assert.Equal(t, "Alice", found.DisplayName())
	})

	t.Run("find with push token skips users without one", func(t *testing.T) {
		testDB.CleanTable(t)

		withToken := domain.NewProfile(alice, "Alice")
		token, err := domain.NewPushToken("token-1")
		require.NoError(t, err)
		withToken.RegisterPushToken(token)

		require.NoError(t, repo.Save(ctx, withToken))
		require.NoError(t, repo.Save(ctx, domain.NewProfile(bob, "Bob")))

		profiles, err := repo.FindWithPushToken(ctx)
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.True(t, profiles[0].UserID().Equals(alice))
	})

	t.Run("find by user id not found", func(t *testing.T) {
		testDB.CleanTable(t)

		_, err := repo.FindByUserID(ctx, bob)

		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})
}

func TestMedicalHistoryRepository(t *testing.T) {
	testutil.SkipIfShort(t)

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewMedicalHistoryRepository(testDB.DB)
	ctx := context.Background()

	alice, err := domain.UserIDFromString("alice")
	require.NoError(t, err)

	newEntry := func(t *testing.T, description string, date *domain.CalendarDate) *domain.MedicalHistoryEntry {
		t.Helper()

		e, err := domain.NewMedicalHistoryEntry(alice, domain.MedicalHistoryDetails{
			Type:        domain.MedicalHistoryIllness,
			Description: description,
			Date:        date,
		})
		require.NoError(t, err)

		return e
	}

	t.Run("list newest first with undated last", func(t *testing.T) {
		testDB.CleanTable(t)

		older := domain.MustCalendarDate(2010, time.January, 1)
		newer := domain.MustCalendarDate(2020, time.January, 1)

		require.NoError(t, repo.Save(ctx, newEntry(t, "Undated", nil)))
		require.NoError(t, repo.Save(ctx, newEntry(t, "Older", &older)))
		require.NoError(t, repo.Save(ctx, newEntry(t, "Newer", &newer)))

		entries, err := repo.FindByOwnerID(ctx, alice)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "Newer", entries[0].Description())
		assert.Equal(t, "Older", entries[1].Description())
		assert.Equal(t, "Undated", entries[2].Description())
	})

	t.Run("update and delete", func(t *testing.T) {
		testDB.CleanTable(t)

		e := newEntry(t, "Asthma", nil)
		require.NoError(t, repo.Save(ctx, e))

		require.NoError(t, e.Update(domain.MedicalHistoryDetails{
			Type:        domain.MedicalHistoryOther,
			Description: "Asthma, resolved",
			Notes:       "no inhaler since 2021",
		}))
		require.NoError(t, repo.Update(ctx, e))

		found, err := repo.FindByID(ctx, e.ID())
		require.NoError(t, err)
		assert.Equal(t, domain.MedicalHistoryOther, found.Type())
		assert.Equal(t, "no inhaler since 2021", found.Notes())

		require.NoError(t, repo.Delete(ctx, e.ID()))
		require.NoError(t, repo.Delete(ctx, e.ID()))

		_, err = repo.FindByID(ctx, e.ID())
		assert.ErrorIs(t, err, domain.ErrMedicalHistoryNotFound)
		assert.ErrorIs(t, repo.Update(ctx, e), domain.ErrMedicalHistoryNotFound)
	})
}

func TestVisitRepository(t *testing.T) {
	testutil.SkipIfShort(t)

	testDB := testutil.SetupTestDB(t)
	defer testDB.TeardownTestDB(t)

	repo := repository.NewVisitRepository(testDB.DB)
	ctx := context.Background()

	newVisit := func(t *testing.T, owner string, date domain.CalendarDate) *domain.Visit {
		t.Helper()

		ownerID, err := domain.UserIDFromString(owner)
		require.NoError(t, err)

		v, err := domain.NewVisit(ownerID, domain.VisitDetails{
			Date:         date,
			HospitalName: "General Hospital",
			DoctorName:   "Dr. Ito",
			SicknessType: "Checkup",
		})
		require.NoError(t, err)

		return v
	}

	t.Run("list by owner newest first", func(t *testing.T) {
		testDB.CleanTable(t)

		require.NoError(t, repo.Save(ctx, newVisit(t, "alice", domain.MustCalendarDate(2023, time.June, 1))))
		require.NoError(t, repo.Save(ctx, newVisit(t, "alice", domain.MustCalendarDate(2024, time.June, 1))))
		require.NoError(t, repo.Save(ctx, newVisit(t, "bob", domain.MustCalendarDate(2024, time.July, 1))))

		alice, err := domain.UserIDFromString("alice")
		require.NoError(t, err)

		visits, err := repo.FindByOwnerID(ctx, alice)
		require.NoError(t, err)
		require.Len(t, visits, 2)
		assert.Equal(t, "2024-06-01", visits[0].Date().String())
		assert.Equal(t, "2023-06-01", visits[1].Date().String())
	})

	t.Run("find by id not found", func(t *testing.T) {
		testDB.CleanTable(t)

		_, err := repo.FindByID(ctx, domain.NewVisitID())

		assert.ErrorIs(t, err, domain.ErrVisitNotFound)
	})

	t.Run("update persists fields", func(t *testing.T) {
		testDB.CleanTable(t)

		v := newVisit(t, "alice", domain.MustCalendarDate(2024, time.June, 1))
		require.NoError(t, repo.Save(ctx, v))

		require.NoError(t, v.Update(domain.VisitDetails{
			Date:         domain.MustCalendarDate(2024, time.June, 2),
			HospitalName: "City Clinic",
			DoctorName:   "Dr. Mori",
			SicknessType: "Follow-up",
			Details:      "stitches removed",
		}))
		require.NoError(t, repo.Update(ctx, v))

		found, err := repo.FindByID(ctx, v.ID())
		require.NoError(t, err)
		assert.Equal(t, "2024-06-02", found.Date().String())
		assert.Equal(t, "City Clinic", found.HospitalName())
		assert.Equal(t, "stitches removed", found.Details())
	})
}
