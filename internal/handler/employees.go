package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/domain"
	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/utils"
)

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID  string      `json:"employee_id" validate:"required"`
		Name        string      `json:"name" validate:"required"`
		Department  string      `json:"department" validate:"required"`
		Salary      float64     `json:"salary" validate:"required"`
		JoiningDate domain.Date `json:"joining_date" validate:"required"`
		Skills      []string    `json:"skills" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee := &domain.Employee{
		EmployeeID:  req.EmployeeID,
		Name:        req.Name,
		Department:  req.Department,
		Salary:      req.Salary,
		JoiningDate: req.JoiningDate,
		Skills:      req.Skills,
	}

	// 字段约束在入库前统一校验
	if err := utils.ValidateEmployee(employee); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "employees_employee_id_key":
				h.conflict(w, r, "员工编号已存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.publishAudit(r, "create", employee.EmployeeID)
	h.successResponse(w, r, "创建员工成功", employee)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)
	h.successResponse(w, r, "获取员工信息成功", employee)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 10
	department := r.URL.Query().Get("department")

	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		p, err := strconv.Atoi(pageParam)
		if err != nil || p < 1 {
			h.badRequest(w, r, errors.New("page 必须为正整数"))
			return
		}
		page = p
	}

	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		l, err := strconv.Atoi(limitParam)
		if err != nil || l < 1 || l > 100 {
			h.badRequest(w, r, errors.New("limit 必须为 1 到 100 之间的整数"))
			return
		}
		limit = l
	}

	employees, total, err := h.repository.ListEmployees(page, limit, department)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取员工列表成功", struct {
		Employees  []*domain.Employee `json:"employees"`
		Pagination Pagination         `json:"pagination"`
	}{
		Employees:  employees,
		Pagination: NewPagination(page, limit, total),
	})
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string      `json:"name"`
		Department  *string      `json:"department"`
		Salary      *float64     `json:"salary"`
		JoiningDate *domain.Date `json:"joining_date"`
		Skills      []string     `json:"skills"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name == nil && req.Department == nil && req.Salary == nil && req.JoiningDate == nil && req.Skills == nil {
		h.badRequest(w, r, errors.New("没有需要更新的字段"))
		return
	}

	// 只校验本次提交的字段，未提交的字段保持原值
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	if req.Name != nil {
		if err := utils.ValidateName(*req.Name); err != nil {
			h.badRequest(w, r, err)
			return
		}
		employee.Name = *req.Name
	}
	if req.Department != nil {
		if err := utils.ValidateDepartment(*req.Department); err != nil {
			h.badRequest(w, r, err)
			return
		}
		employee.Department = *req.Department
	}
	if req.Salary != nil {
		if err := utils.ValidateSalary(*req.Salary); err != nil {
			h.badRequest(w, r, err)
			return
		}
		employee.Salary = *req.Salary
	}
	if req.JoiningDate != nil {
		if err := utils.ValidateJoiningDate(*req.JoiningDate); err != nil {
			h.badRequest(w, r, err)
			return
		}
		employee.JoiningDate = *req.JoiningDate
	}
	if req.Skills != nil {
		if err := utils.ValidateSkills(req.Skills); err != nil {
			h.badRequest(w, r, err)
			return
		}
		employee.Skills = req.Skills
	}

	if err := h.repository.UpdateEmployee(employee); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// 版本不匹配和记录被并发删除都会更新不到行，重查一次区分两种情况
			if _, getErr := h.repository.GetEmployeeByEmployeeID(employee.EmployeeID); errors.Is(getErr, sql.ErrNoRows) {
				h.notFound(w, r, "员工不存在")
				return
			}
			h.errorResponse(w, r, http.StatusConflict, KindConflict, "更新员工信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.publishAudit(r, "update", employee.EmployeeID)
	h.successResponse(w, r, "更新员工信息成功", employee)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	if err := h.repository.DeleteEmployee(employee.ID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.notFound(w, r, "员工不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.publishAudit(r, "delete", employee.EmployeeID)
	h.successResponse(w, r, "删除员工成功", nil)
}

func (h *Handler) SearchEmployeesBySkill(w http.ResponseWriter, r *http.Request) {
	skill := r.URL.Query().Get("skill")
	if skill == "" {
		h.badRequest(w, r, errors.New("skill 不能为空"))
		return
	}

	employees, err := h.repository.SearchEmployeesBySkill(skill)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "搜索员工成功", employees)
}

func (h *Handler) GetAverageSalaryByDepartment(w http.ResponseWriter, r *http.Request) {
	averages, err := h.repository.AverageSalaryByDepartment()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取部门平均薪资成功", averages)
}

// publishAudit 把审计消息发送到消息队列，由 auditor 落库，
// 发送失败只记录日志，不影响已经完成的写操作
func (h *Handler) publishAudit(r *http.Request, action string, employeeID string) {
	actor, _ := r.Context().Value(SubCtxKey).(string)

	msg := domain.AuditMessage{
		Action:     action,
		EmployeeID: employeeID,
		Actor:      actor,
		OccurredAt: time.Now(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("审计消息序列化失败", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.auditChannel.PublishWithContext(
		ctx,
		"",
		"audit_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        data,
		},
	); err != nil {
		slog.Error("审计消息发送失败", "action", action, "employee_id", employeeID, "error", err)
	}
}
