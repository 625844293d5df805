package main

import (
	"fmt"
	"log"
	"time"

	"bookly/internal/database"
	"bookly/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("bookly.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM schedules")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")
	users := []domain.User{}
	emails := []string{"alice@example.com", "bob@example.com", "carol@example.com"}
	for i, email := range emails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user := domain.User{
			ID:           uuid.NewString(),
			Name:         fmt.Sprintf("User %d", i+1),
			Email:        email,
			PasswordHash: string(hash),
		}
		db.Create(&user)
		users = append(users, user)
	}
	log.Println("Users created: password123")

	// ================== SERVICES ==================
	log.Println("Creating services...")
	names := []string{"haircut", "massage", "consultation"}
	services := make([]domain.Service, 0, len(names))
	for i, name := range names {
		svc := domain.Service{
			ID:          uuid.NewString(),
			Name:        name,
			Description: fmt.Sprintf("The %s service, slot %d", name, i+1),
		}
		db.Create(&svc)
		services = append(services, svc)
	}

	// ================== SCHEDULES ==================
	log.Println("Creating schedules...")
	base := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	schedules := make([]domain.Schedule, 0)
	for _, svc := range services {
		for slot := 0; slot < 4; slot++ {
			sched := domain.Schedule{
				ID:        uuid.NewString(),
				ServiceID: svc.ID,
				StartTime: base.Add(time.Duration(slot) * time.Hour),
				EndTime:   base.Add(time.Duration(slot)*time.Hour + 30*time.Minute),
			}
			db.Create(&sched)
			schedules = append(schedules, sched)
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	for i, user := range users {
		sched := schedules[i*4]
		db.Create(&domain.Booking{
			ID:         uuid.NewString(),
			UserID:     user.ID,
			ServiceID:  sched.ServiceID,
			ScheduleID: sched.ID,
			Status:     domain.BookingPending,
		})
	}

	log.Println("Seed complete.")
}
