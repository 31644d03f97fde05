package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/domain"
)

var (
	employeeIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	namePattern       = regexp.MustCompile(`^[A-Za-z ]+$`)
	departmentPattern = regexp.MustCompile(`^[A-Za-z &-]+$`)
	skillPattern      = regexp.MustCompile(`^[A-Za-z0-9 +#./&-]+$`)
)

// 入职日期的下限，公司不可能在 2000 年之前就有员工记录
var minJoiningDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

const maxSalary = 1_000_000

func ValidateEmployeeID(id string) error {
	if len(id) < 3 || len(id) > 20 {
		return fmt.Errorf("员工编号长度必须在 3 到 20 之间")
	}
	if !employeeIDPattern.MatchString(id) {
		return fmt.Errorf("员工编号只能包含字母和数字")
	}
	return nil
}

func ValidateName(name string) error {
	if len(name) < 2 || len(name) > 100 {
		return fmt.Errorf("姓名长度必须在 2 到 100 之间")
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("姓名不能为空白")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("姓名只能包含字母和空格")
	}
	return nil
}

func ValidateDepartment(department string) error {
	if len(department) < 2 || len(department) > 50 {
		return fmt.Errorf("部门名称长度必须在 2 到 50 之间")
	}
	if !departmentPattern.MatchString(department) {
		return fmt.Errorf("部门名称只能包含字母、空格、& 和 -")
	}
	return nil
}

func ValidateSalary(salary float64) error {
	if salary <= 0 {
		return fmt.Errorf("薪资必须为正数")
	}
	if salary > maxSalary {
		return fmt.Errorf("薪资不能超过 %d", maxSalary)
	}
	return nil
}

func ValidateJoiningDate(date domain.Date) error {
	if date.Time.After(time.Now()) {
		return fmt.Errorf("入职日期不能晚于今天")
	}
	if date.Time.Before(minJoiningDate) {
		return fmt.Errorf("入职日期不能早于 2000-01-01")
	}
	return nil
}

func ValidateSkills(skills []string) error {
	if len(skills) < 1 || len(skills) > 20 {
		return fmt.Errorf("技能数量必须在 1 到 20 之间")
	}

	for i, skill := range skills {
		if strings.TrimSpace(skill) == "" {
			return fmt.Errorf("第 %d 项技能不能为空白", i+1)
		}
		if len(skill) > 50 {
			return fmt.Errorf("第 %d 项技能长度不能超过 50", i+1)
		}
		if !skillPattern.MatchString(skill) {
			return fmt.Errorf("第 %d 项技能包含非法字符", i+1)
		}
	}

	return nil
}

func ValidateEmployee(e *domain.Employee) error {
	if err := ValidateEmployeeID(e.EmployeeID); err != nil {
		return err
	}
	if err := ValidateName(e.Name); err != nil {
		return err
	}
	if err := ValidateDepartment(e.Department); err != nil {
		return err
	}
	if err := ValidateSalary(e.Salary); err != nil {
		return err
	}
	if err := ValidateJoiningDate(e.JoiningDate); err != nil {
		return err
	}
	if err := ValidateSkills(e.Skills); err != nil {
		return err
	}
	return nil
}
