// Package data holds the demo dataset the in-memory repositories start
// from. Everything here mirrors what a fresh deployment of the care app
// ships with; none of it survives a restart.
package data

import (
	"time"

	"vetcare-api/core/logger"
	animalentity "vetcare-api/modules/animal/entity"
	appointmententity "vetcare-api/modules/appointment/entity"
	authentity "vetcare-api/modules/auth/entity"
	caselogentity "vetcare-api/modules/caselog/entity"
	inventoryentity "vetcare-api/modules/inventory/entity"
	taskentity "vetcare-api/modules/task/entity"

	"golang.org/x/crypto/bcrypt"
)

// Users returns the six demo accounts. Passwords are hashed here rather
// than stored as literals so the cost factor can change without touching
// the dataset.
func Users() []authentity.User {
	users := []struct {
		id, name, email, password string
		role                      authentity.UserRole
	}{
		{"1", "Dr. Sarah Mitchell", "sarah@vetcare.app", "headvet123", authentity.RoleHeadVet},
		{"2", "Dr. James Okafor", "james@vetcare.app", "assistant123", authentity.RoleAssistantVet},
		{"3", "Amara Singh", "amara@vetcare.app", "caretaker123", authentity.RoleCaretakerA},
		{"4", "Tomás Herrera", "tomas@vetcare.app", "caretaker123", authentity.RoleCaretakerB},
		{"5", "Elif Demir", "elif@vetcare.app", "caretaker123", authentity.RoleCaretakerC},
		{"6", "Orla Kavanagh", "orla@vetcare.app", "admin123", authentity.RoleAdmin},
	}

	out := make([]authentity.User, 0, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Data:Users:Hash:Error", "email", u.email, "error", err)
			continue
		}
		out = append(out, authentity.User{
			ID:           u.id,
			Name:         u.name,
			Email:        u.email,
			Role:         u.role,
			PasswordHash: hash,
		})
	}
	return out
}

// Members returns the demo animal catalog.
func Members() []animalentity.Member {
	return []animalentity.Member{
		{
			ID:         "1",
			Name:       "Fischer's Lovebirds",
			Category:   animalentity.CategoryAvian,
			TotalHeads: 3,
			Animals: []animalentity.Animal{
				{ID: "1-1", Name: "Lovebird", UniqueName: "Kiwi", Species: "Agapornis fischeri", Type: animalentity.CategoryAvian, HealthStatus: animalentity.HealthStatusHealthy, Gender: animalentity.GenderFemale, AgeYears: 2, Details: "Bonded pair with Mango"},
				{ID: "1-2", Name: "Lovebird", UniqueName: "Mango", Species: "Agapornis fischeri", Type: animalentity.CategoryAvian, HealthStatus: animalentity.HealthStatusHealthy, Gender: animalentity.GenderMale, AgeYears: 3},
				{ID: "1-3", Name: "Lovebird", UniqueName: "Pistachio", Species: "Agapornis fischeri", Type: animalentity.CategoryAvian, HealthStatus: animalentity.HealthStatusSick, Gender: animalentity.GenderMale, AgeYears: 1, Details: "Feather plucking, under observation"},
			},
		},
		{
			ID:         "2",
			Name:       "Blue-and-gold Macaws",
			Category:   animalentity.CategoryAvian,
			TotalHeads: 2,
			Animals: []animalentity.Animal{
				{ID: "2-1", Name: "Macaw", UniqueName: "Rio", Species: "Ara ararauna", Type: animalentity.CategoryAvian, HealthStatus: animalentity.HealthStatusHealthy, Gender: animalentity.GenderMale, AgeYears: 12},
				{ID: "2-2", Name: "Macaw", UniqueName: "Azul", Species: "Ara ararauna", Type: animalentity.CategoryAvian, HealthStatus: animalentity.HealthStatusUnderTreatment, Gender: animalentity.GenderFemale, AgeYears: 9, Details: "Recovering from wing injury"},
			},
		},
		{
			ID:         "3",
			Name:       "Bengal Tigers",
			Category:   animalentity.CategoryMammal,
			TotalHeads: 2,
			Animals: []animalentity.Animal{
				{ID: "3-1", Name: "Tiger", UniqueName: "Raja", Species: "Panthera tigris tigris", Type: animalentity.CategoryMammal, HealthStatus: animalentity.HealthStatusHealthy, Gender: animalentity.GenderMale, AgeYears: 7},
				{ID: "3-2", Name: "Tiger", UniqueName: "Sundari", Species: "Panthera tigris tigris", Type: animalentity.CategoryMammal, HealthStatus: animalentity.HealthStatusUnderTreatment, Gender: animalentity.GenderFemale, AgeYears: 5, Details: "Dental treatment in progress"},
			},
		},
		{
			ID:         "4",
			Name:       "Green Iguanas",
			Category:   animalentity.CategoryReptile,
			TotalHeads: 2,
			Animals: []animalentity.Animal{
				{ID: "4-1", Name: "Iguana", UniqueName: "Verde", Species: "Iguana iguana", Type: animalentity.CategoryReptile, HealthStatus: animalentity.HealthStatusHealthy, Gender: animalentity.GenderMale, AgeYears: 4},
				{ID: "4-2", Name: "Iguana", UniqueName: "Sol", Species: "Iguana iguana", Type: animalentity.CategoryReptile, HealthStatus: animalentity.HealthStatusSick, Gender: animalentity.GenderFemale, AgeYears: 6, Details: "Loss of appetite"},
			},
		},
	}
}

// Appointments returns the starting schedule: one confirmed appointment,
// one scheduled request awaiting approval and one unscheduled caretaker
// request.
func Appointments() []*appointmententity.Appointment {
	now := time.Now().UTC()
	return []*appointmententity.Appointment{
		{
			ID:         "a1",
			AnimalIDs:  []string{"3-2"},
			Date:       now.AddDate(0, 0, 2).Format("2006-01-02"),
			Time:       "10:00 AM",
			Status:     appointmententity.StatusConfirmed,
			AssignedTo: "1",
			Procedure:  "Dental follow-up",
			CreatedAt:  now.Add(-48 * time.Hour),
		},
		{
			ID:          "a2",
			AnimalIDs:   []string{"2-2"},
			Date:        now.AddDate(0, 0, 3).Format("2006-01-02"),
			Time:        "2:30 PM",
			Status:      appointmententity.StatusRequested,
			AssignedTo:  "1",
			RequestedBy: "2",
			Procedure:   "Wing recheck",
			CreatedAt:   now.Add(-24 * time.Hour),
		},
		{
			ID:          "a3",
			AnimalIDs:   []string{"1-3"},
			Status:      appointmententity.StatusRequested,
			RequestedBy: "3",
			Procedure:   "Feather plucking assessment",
			CreatedAt:   now.Add(-6 * time.Hour),
		},
	}
}

// Tasks returns the caretakers' starting daily tasks.
func Tasks() []*taskentity.Task {
	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	return []*taskentity.Task{
		{ID: "t1", Title: "Morning feed, aviary", Description: "Seed mix and fresh fruit", AssignedTo: "3", Status: taskentity.TaskPending, DueDate: today, IsUrgent: false, CreatedAt: now},
		{ID: "t2", Title: "Check Pistachio", Description: "Observe feather plucking, note changes", AssignedTo: "3", Status: taskentity.TaskPending, DueDate: today, IsUrgent: true, CreatedAt: now},
		{ID: "t3", Title: "Clean tiger enclosure", AssignedTo: "4", Status: taskentity.TaskPending, DueDate: today, IsUrgent: false, CreatedAt: now},
		{ID: "t4", Title: "Heat lamp check, reptile house", AssignedTo: "5", Status: taskentity.TaskCompleted, DueDate: today, IsUrgent: false, CreatedAt: now},
	}
}

// Cases returns the starting case log.
func Cases() []*caselogentity.Case {
	now := time.Now().UTC()
	return []*caselogentity.Case{
		{
			ID:             "c1",
			AnimalID:       "4-2",
			Severity:       caselogentity.SeverityHigh,
			AssignedVets:   []string{"1"},
			Notes:          "Refusing food for three days",
			Status:         caselogentity.CaseActive,
			ApprovalStatus: caselogentity.ApprovalApproved,
			ReportedBy:     "5",
			CreatedAt:      now.Add(-72 * time.Hour),
		},
	}
}

// Items returns the starting inventory.
func Items() []*inventoryentity.Item {
	now := time.Now().UTC()
	return []*inventoryentity.Item{
		{ID: "i1", ItemName: "Seed mix 20kg", Quantity: 14, Threshold: 5, UpdatedAt: now},
		{ID: "i2", ItemName: "Latex gloves (box)", Quantity: 3, Threshold: 10, UpdatedAt: now},
		{ID: "i3", ItemName: "Meloxicam 10ml", Quantity: 8, Threshold: 4, UpdatedAt: now},
		{ID: "i4", ItemName: "Gauze rolls", Quantity: 22, Threshold: 8, UpdatedAt: now},
	}
}
