package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required,min=3,max=50"`
		Password string `json:"password" validate:"required,min=6,max=72"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 对密码进行哈希，明文密码不落库也不写日志
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user := &domain.User{
		Username:     req.Username,
		PasswordHash: string(hashedPassword),
	}

	if err := h.repository.CreateUser(user); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "users_username_key":
				h.conflict(w, r, "用户名已存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "注册成功", user)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	// 登录接口按约定使用表单提交
	if err := r.ParseForm(); err != nil {
		h.badRequest(w, r, err)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.badRequest(w, r, errors.New("用户名和密码不能为空"))
		return
	}

	// 在 redis 中记录尝试次数，窗口内超过上限直接拒绝
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	attemptsKey := fmt.Sprintf("login_attempts_%s", username)
	attempts, err := h.redisClient.Incr(ctx, attemptsKey).Result()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if attempts == 1 {
		if err := h.redisClient.Expire(ctx, attemptsKey, time.Duration(h.config.Login.AttemptWindow)*time.Second).Err(); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}
	if attempts > int64(h.config.Login.MaxAttempts) {
		h.tooManyRequests(w, r, "尝试次数过多，请稍后再试")
		return
	}

	// 验证用户名和密码
	user, err := h.repository.GetUserByUsername(username)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.unauthorized(w, r, "用户名不存在或密码错误")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		switch {
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			h.unauthorized(w, r, "用户名不存在或密码错误")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.redisClient.Del(ctx, attemptsKey).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 签发 JWT
	ss, err := h.tokenService.Issue(user.Username)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 这个接口的响应格式是对外约定的一部分，不套统一的信封
	h.writeJSON(w, r, http.StatusOK, struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}{
		AccessToken: ss,
		TokenType:   "bearer",
	})
}
