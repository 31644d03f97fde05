package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/auth"
	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/config"
	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/repository"
)

type Handler struct {
	validate     *validator.Validate
	config       *config.Config
	repository   *repository.Repository
	translator   ut.Translator
	tokenService *auth.TokenService
	auditChannel *amqp.Channel
	redisClient  *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, tokenService *auth.TokenService, auditCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:     validate,
		config:       cfg,
		repository:   repo,
		translator:   trans,
		tokenService: tokenService,
		auditChannel: auditCh,
		redisClient:  rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Post("/register", h.Register)
	h.Mux.Post("/token", h.Login)

	// 员工相关，读接口公开，写接口必须携带 Bearer 令牌
	h.Mux.Route("/employees", func(r chi.Router) {
		r.Get("/", h.ListEmployees)
		r.Get("/search", h.SearchEmployeesBySkill)
		r.Get("/avg-salary", h.GetAverageSalaryByDepartment)
		r.With(h.auth).Post("/", h.CreateEmployee)
		r.Route("/{id}", func(r chi.Router) {
			r.With(h.employeeInfo).Get("/", h.GetEmployee)
			r.With(h.auth, h.employeeInfo).Put("/", h.UpdateEmployee)
			r.With(h.auth, h.employeeInfo).Delete("/", h.DeleteEmployee)
		})
	})
}
