package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/config"
	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/domain"
	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/repository"
	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入演示账号, 2: 插入随机员工)")
	flag.IntVar(&n, "n", 5, "要插入的员工数量")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.EnsureSchema(context.Background()); err != nil {
		logger.Error("无法初始化数据库结构", "error", err)
		return
	}

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.User.Password), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("无法生成密码哈希", slog.String("error", err.Error()))
			return
		}

		user := &domain.User{
			Username:     cfg.Seed.User.Username,
			PasswordHash: string(passwordHash),
		}
		if err := repo.CreateUser(user); err != nil {
			slog.Error("无法插入演示账号", slog.String("error", err.Error()))
			return
		}

		slog.Info("插入演示账号成功", slog.String("username", user.Username))
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的员工数量")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			employee := utils.GenerateRandomEmployee()
			if err := utils.ValidateEmployee(employee); err != nil {
				slog.Error("生成的员工不符合约束", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateEmployee(employee); err != nil {
				slog.Error("无法插入员工", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("插入员工成功", slog.Int("count", n-cnt))
	default:
		slog.Error("指定的操作非法")
	}
}
