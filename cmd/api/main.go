package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/suweldo-hr/suweldo-backend-go/internal/config"
	appHTTP "github.com/suweldo-hr/suweldo-backend-go/internal/handler/http"
	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/cron"
	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/database"
	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/jwt"
	"github.com/suweldo-hr/suweldo-backend-go/internal/repository/postgresql"
	contributionService "github.com/suweldo-hr/suweldo-backend-go/internal/service/contribution"
	payrollService "github.com/suweldo-hr/suweldo-backend-go/internal/service/payroll"
	timesheetService "github.com/suweldo-hr/suweldo-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.Payroll.Timezone)
	if err != nil {
		fmt.Println("Error loading payroll timezone:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	txManager := postgresql.NewTxManager(db)
	punchRepo := postgresql.NewPunchRepository(db)
	workDayRepo := postgresql.NewWorkDayRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	tableRepo := postgresql.NewTableRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	resolver := contributionService.NewCachingResolver(tableRepo)
	adminSvc := contributionService.NewAdminService(tableRepo, resolver)
	timesheetSvc := timesheetService.NewTimesheetService(
		punchRepo,
		workDayRepo,
		employeeRepo,
		scheduleRepo,
		holidayRepo,
		settingsRepo,
		entryRepo,
		loc,
	)
	payrollSvc := payrollService.NewPayrollService(
		txManager,
		periodRepo,
		entryRepo,
		adjustmentRepo,
		settingsRepo,
		employeeRepo,
		compensationRepo,
		loanRepo,
		resolver,
		timesheetSvc.(payrollService.TimeAggregator),
		cfg.Payroll.WorkerLimit,
	)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	contributionHandler := appHTTP.NewContributionHandler(adminSvc)

	scheduler := cron.NewScheduler()
	timesheetJobs := cron.NewTimesheetJobs(timesheetSvc, db, loc)
	timesheetJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		payrollHandler,
		timesheetHandler,
		contributionHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
