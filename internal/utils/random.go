package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/domain"
)

var firstNames = []string{
	"James", "Mary", "John", "Linda", "Robert", "Susan", "Michael", "Karen",
	"David", "Nancy", "Richard", "Lisa", "Joseph", "Betty", "Thomas", "Helen",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor", "Thomas",
}

var departments = []string{
	"Engineering", "Sales", "Marketing", "Human Resources", "Finance",
	"Research & Development", "Customer Support",
}

var skillPool = []string{
	"Go", "Python", "SQL", "Kubernetes", "Docker", "React", "TypeScript",
	"PostgreSQL", "Redis", "RabbitMQ", "Linux", "CI/CD", "C++", "Java",
}

func GenerateRandomEmployeeID() string {
	return fmt.Sprintf("E%06d", rand.Intn(1_000_000))
}

func GenerateRandomEmployee() *domain.Employee {
	name := firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]

	// 入职日期在 2000-01-01 和今天之间随机选取
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	days := int(time.Since(start).Hours() / 24)
	joiningDate := domain.Date{Time: start.AddDate(0, 0, rand.Intn(days))}

	skillCount := rand.Intn(4) + 1
	skills := make([]string, 0, skillCount)
	seen := make(map[string]bool)
	for len(skills) < skillCount {
		skill := skillPool[rand.Intn(len(skillPool))]
		if seen[skill] {
			continue
		}
		seen[skill] = true
		skills = append(skills, skill)
	}

	return &domain.Employee{
		EmployeeID:  GenerateRandomEmployeeID(),
		Name:        name,
		Department:  departments[rand.Intn(len(departments))],
		Salary:      float64(rand.Intn(95_000)+5_000) + float64(rand.Intn(100))/100,
		JoiningDate: joiningDate,
		Skills:      skills,
	}
}
