package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/domain"
)

func (r *Repository) CreateEmployee(e *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	skills, err := json.Marshal(e.Skills)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO employees (employee_id, name, department, salary, joining_date, skills)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	args := []any{e.EmployeeID, e.Name, e.Department, e.Salary, e.JoiningDate, skills}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.CreatedAt, &e.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEmployeeByEmployeeID(employeeID string) (*domain.Employee, error) {
	query := `
		SELECT id, name, department, salary, joining_date, skills, created_at, version
		FROM employees WHERE employee_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	e := &domain.Employee{
		EmployeeID: employeeID,
	}

	var skills []byte
	dst := []any{&e.ID, &e.Name, &e.Department, &e.Salary, &e.JoiningDate, &skills, &e.CreatedAt, &e.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, employeeID).Scan(dst...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(skills, &e.Skills); err != nil {
		return nil, err
	}

	return e, nil
}

// ListEmployees 返回指定页的员工记录和过滤后的总数，
// 排序固定按 id 升序，即按插入顺序
func (r *Repository) ListEmployees(page int, limit int, department string) ([]*domain.Employee, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	countQuery := `SELECT count(*) FROM employees`
	listQuery := `
		SELECT id, employee_id, name, department, salary, joining_date, skills, created_at, version
		FROM employees
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	countArgs := []any{}
	listArgs := []any{limit, (page - 1) * limit}

	// 总数必须统计过滤后的集合，分页元数据才能和实际页数对上
	if department != "" {
		countQuery = `SELECT count(*) FROM employees WHERE department = $1`
		listQuery = `
			SELECT id, employee_id, name, department, salary, joining_date, skills, created_at, version
			FROM employees
			WHERE department = $1
			ORDER BY id
			LIMIT $2 OFFSET $3
		`
		countArgs = []any{department}
		listArgs = []any{department, limit, (page - 1) * limit}
	}

	total := 0
	if err := r.dbpool.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.dbpool.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees, err := scanEmployees(rows)
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// escapeLikePattern 转义 LIKE 模式中的特殊字符，保证搜索词按字面匹配
func escapeLikePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

// SearchEmployeesBySkill 对每条记录的技能列表做大小写不敏感的包含匹配
func (r *Repository) SearchEmployeesBySkill(skill string) ([]*domain.Employee, error) {
	query := `
		SELECT id, employee_id, name, department, salary, joining_date, skills, created_at, version
		FROM employees
		WHERE EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(skills) AS s(skill)
			WHERE s.skill ILIKE '%' || $1 || '%' ESCAPE '\'
		)
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, escapeLikePattern(skill))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// UpdateEmployee 整体写回合并后的记录，employee_id 不可修改，不在更新列中
func (r *Repository) UpdateEmployee(e *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	skills, err := json.Marshal(e.Skills)
	if err != nil {
		return err
	}

	query := `
		UPDATE employees
		SET
			name = $1,
			department = $2,
			salary = $3,
			joining_date = $4,
			skills = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	args := []any{e.Name, e.Department, e.Salary, e.JoiningDate, skills, e.ID, e.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&e.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEmployee(id int64) error {
	query := `
		DELETE FROM employees WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// AverageSalaryByDepartment 按部门求平均薪资，保留两位小数，
// 没有员工的部门不会出现在结果中
func (r *Repository) AverageSalaryByDepartment() (map[string]float64, error) {
	query := `
		SELECT department, ROUND(AVG(salary)::numeric, 2)
		FROM employees
		GROUP BY department
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	averages := make(map[string]float64)
	for rows.Next() {
		var department string
		var average float64
		if err := rows.Scan(&department, &average); err != nil {
			return nil, err
		}
		averages[department] = average
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return averages, nil
}

func scanEmployees(rows *sql.Rows) ([]*domain.Employee, error) {
	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		e := &domain.Employee{}
		var skills []byte

		dst := []any{&e.ID, &e.EmployeeID, &e.Name, &e.Department, &e.Salary, &e.JoiningDate, &skills, &e.CreatedAt, &e.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(skills, &e.Skills); err != nil {
			return nil, err
		}

		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
