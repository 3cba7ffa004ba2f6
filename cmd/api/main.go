package main

import (
	"fmt"
	"net/http"

	"github.com/crewdesk/crewdesk-backend-go/internal/config"
	appHTTP "github.com/crewdesk/crewdesk-backend-go/internal/handler/http"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/database"
	"github.com/crewdesk/crewdesk-backend-go/internal/pkg/jwt"
	"github.com/crewdesk/crewdesk-backend-go/internal/repository/postgresql"
	payrollService "github.com/crewdesk/crewdesk-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	debtRepo := postgresql.NewDebtRepository(db)
	shortageRepo := postgresql.NewShortageRepository(db)
	snapshotRepo := postgresql.NewCountSnapshotRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	payrollSvc := payrollService.NewPayrollService(
		payrollRepo,
		employeeRepo,
		shiftRepo,
		debtRepo,
		shortageRepo,
		snapshotRepo,
		adjustmentRepo,
		cfg.Payroll,
	)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(JWTService, payrollHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
