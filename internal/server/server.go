package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/fieldhr/rollcall/internal/approver"
	approverdomain "github.com/fieldhr/rollcall/internal/approver/domain"
	"github.com/fieldhr/rollcall/internal/attendance"
	attendancedomain "github.com/fieldhr/rollcall/internal/attendance/domain"
	"github.com/fieldhr/rollcall/internal/auth"
	authdomain "github.com/fieldhr/rollcall/internal/auth/domain"
	"github.com/fieldhr/rollcall/internal/billingrule"
	billingruledomain "github.com/fieldhr/rollcall/internal/billingrule/domain"
	"github.com/fieldhr/rollcall/internal/config"
	"github.com/fieldhr/rollcall/internal/designation"
	designationdomain "github.com/fieldhr/rollcall/internal/designation/domain"
	"github.com/fieldhr/rollcall/internal/employee"
	employeedomain "github.com/fieldhr/rollcall/internal/employee/domain"
	"github.com/fieldhr/rollcall/internal/location"
	locationdomain "github.com/fieldhr/rollcall/internal/location/domain"
	"github.com/fieldhr/rollcall/internal/observability"
	obsmiddleware "github.com/fieldhr/rollcall/internal/observability/logger"
	obsmetrics "github.com/fieldhr/rollcall/internal/observability/metrics"
	"github.com/fieldhr/rollcall/internal/vendors"
	vendordomain "github.com/fieldhr/rollcall/internal/vendors/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	auth.Module,
	vendor.Module,
	location.Module,
	approver.Module,
	designation.Module,
	billingrule.Module,
	employee.Module,
	attendance.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug: obsCfg.Debug(),
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine         *gin.Engine
	cfg            config.Config
	authSvc        authdomain.Service
	vendorSvc      vendordomain.Service
	locationSvc    locationdomain.Service
	approverSvc    approverdomain.Service
	designationSvc designationdomain.Service
	billingRuleSvc billingruledomain.Service
	employeeSvc    employeedomain.Service
	attendanceSvc  attendancedomain.Service
}

type ServerParams struct {
	fx.In

	Gin            *gin.Engine
	Cfg            config.Config
	AuthSvc        authdomain.Service
	VendorSvc      vendordomain.Service
	LocationSvc    locationdomain.Service
	ApproverSvc    approverdomain.Service
	DesignationSvc designationdomain.Service
	BillingRuleSvc billingruledomain.Service
	EmployeeSvc    employeedomain.Service
	AttendanceSvc  attendancedomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:         p.Gin,
		cfg:            p.Cfg,
		authSvc:        p.AuthSvc,
		vendorSvc:      p.VendorSvc,
		locationSvc:    p.LocationSvc,
		approverSvc:    p.ApproverSvc,
		designationSvc: p.DesignationSvc,
		billingRuleSvc: p.BillingRuleSvc,
		employeeSvc:    p.EmployeeSvc,
		attendanceSvc:  p.AttendanceSvc,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/login", s.Login)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api", s.AdminRequired())

	api.POST("/vendors", s.CreateVendor)
	api.GET("/vendors", s.ListVendors)
	api.GET("/vendors/:id", s.GetVendorByID)

	api.POST("/locations", s.CreateLocation)
	api.GET("/locations", s.ListLocations)

	api.POST("/approvers", s.CreateApprover)
	api.GET("/approvers", s.ListApprovers)

	api.POST("/designations", s.CreateDesignation)
	api.GET("/designations", s.ListDesignations)

	api.POST("/billing-cycle-rules", s.CreateBillingCycleRule)
	api.GET("/billing-cycle-rules", s.ListBillingCycleRules)

	api.POST("/employees", s.CreateEmployee)
	api.GET("/employees", s.ListEmployees)
	api.GET("/employees/:emp_id", s.GetEmployeeByEmpID)
	api.POST("/employees/:emp_id/resign", s.ResignEmployee)

	api.POST("/attendance", s.SubmitAttendance)
	api.GET("/attendance", s.AttendanceReport)
}
