package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/csorodrigo/projeto-rh-sub003/internal/absence"
	"github.com/csorodrigo/projeto-rh-sub003/internal/company"
	"github.com/csorodrigo/projeto-rh-sub003/internal/employee"
	"github.com/csorodrigo/projeto-rh-sub003/internal/employeesalary"
	"github.com/csorodrigo/projeto-rh-sub003/internal/export"
	"github.com/csorodrigo/projeto-rh-sub003/internal/holiday"
	"github.com/csorodrigo/projeto-rh-sub003/internal/messaging/kafka"
	"github.com/csorodrigo/projeto-rh-sub003/internal/middleware"
	"github.com/csorodrigo/projeto-rh-sub003/internal/timerecord"
	"github.com/csorodrigo/projeto-rh-sub003/internal/workschedule"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	companyRepo := company.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	salaryRepo := employeesalary.NewRepository(gormDB)
	scheduleRepo := workschedule.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	absenceRepo := absence.NewRepository(gormDB)
	timeRecordRepo := timerecord.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	companyService := company.NewService(db, companyRepo)
	employeeService := employee.NewService(db, employeeRepo)
	timeRecordService := timerecord.NewService(db, timeRecordRepo)
	exportService := export.NewService(db, export.Deps{
		Companies:    companyRepo,
		Employees:    employeeRepo,
		Salaries:     salaryRepo,
		Schedules:    scheduleRepo,
		Holidays:     holidayRepo,
		Absences:     absenceRepo,
		TimeRecords:  timeRecordRepo,
		Consolidator: timeRecordService,
		Outbox:       outboxRepo,
	})

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	employeeHandler := employee.NewHandler(employeeService)
	timeRecordHandler := timerecord.NewHandler(timeRecordService)
	exportHandler := export.NewHandler(exportService)

	// --- Middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	api := router.Group("/api/v1")
	company.RegisterRoutes(api, companyHandler)

	// Everything below is tenant-scoped.
	scoped := api.Group("")
	scoped.Use(middleware.CompanyContext())
	scoped.Use(middleware.ContextLogger(zap.L()))
	scoped.Use(middleware.Idempotency(rdb))
	{
		employee.RegisterRoutes(scoped, employeeHandler)
		timerecord.RegisterRoutes(scoped, timeRecordHandler)
	}

	// File generation is expensive; throttle per tenant on top of the
	// in-flight dedup the export service already does.
	exports := scoped.Group("", middleware.RateLimitByCompany(rate.Limit(1), 3))
	export.RegisterRoutes(exports, exportHandler)

	return nil
}
