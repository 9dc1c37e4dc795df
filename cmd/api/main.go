package main

import (
	"fmt"
	"net/http"

	"github.com/atlashr/timesheet-backend-go/internal/config"
	appHTTP "github.com/atlashr/timesheet-backend-go/internal/handler/http"
	"github.com/atlashr/timesheet-backend-go/internal/pkg/database"
	"github.com/atlashr/timesheet-backend-go/internal/pkg/jwt"
	"github.com/atlashr/timesheet-backend-go/internal/repository/attendanceapi"
	"github.com/atlashr/timesheet-backend-go/internal/repository/postgresql"
	holidayService "github.com/atlashr/timesheet-backend-go/internal/service/holiday"
	leaveService "github.com/atlashr/timesheet-backend-go/internal/service/leave"
	reportService "github.com/atlashr/timesheet-backend-go/internal/service/report"
	timesheetService "github.com/atlashr/timesheet-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	customHolidayRepo := postgresql.NewCustomHolidayRepository(db)

	apiClient := attendanceapi.NewClient(cfg.AttendanceAPI.BaseURL, cfg.AttendanceAPI.Token)
	timesheetGateway := attendanceapi.NewTimesheetGateway(apiClient)
	leaveGateway := attendanceapi.NewLeaveGateway(apiClient)
	holidayGateway := attendanceapi.NewHolidayGateway(apiClient)
	employeeGateway := attendanceapi.NewEmployeeGateway(apiClient)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret)
	leaveSvc := leaveService.NewLeaveService(leaveGateway)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetGateway)
	holidaySvc := holidayService.NewHolidayService(customHolidayRepo)
	reconciler := reportService.NewReconciler(
		timesheetGateway,
		leaveGateway,
		holidayGateway,
		customHolidayRepo,
		employeeGateway,
		leaveSvc,
		cfg.Report.BatchSize,
		cfg.Report.UTCOffsetMinutes,
	)

	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc, reconciler)
	reportHandler := appHTTP.NewReportHandler(reconciler)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(jwtSvc, timesheetHandler, reportHandler, holidayHandler, leaveHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
