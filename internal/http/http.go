package http

import (
	"github.com/gin-gonic/gin"
	"github.com/seodius/KappaRecruit/internal/appcontext"
	"github.com/seodius/KappaRecruit/internal/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/seodius/KappaRecruit/docs"
)

type APIService struct {
	engine  *gin.Engine
	context *appcontext.Context
}

func NewHTTPService(ctx *appcontext.Context) *APIService {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORSMiddleware())

	service := &APIService{
		engine:  engine,
		context: ctx,
	}
	service.setupRoutes()
	return service
}

func (h *APIService) Engine() *gin.Engine {
	return h.engine
}

func (h *APIService) setupRoutes() {
	v1 := h.engine.Group("/api/v1")
	h.setupAuthRoutes(v1)
	h.setupJobRoutes(v1)
	h.setupCandidateRoutes(v1)
	h.setupApplicationRoutes(v1)
	h.setupResumeRoutes(v1)
	h.setupInterviewRoutes(v1)
	h.setupRoleRoutes(v1)
	h.setupDepartmentRoutes(v1)
	h.setupContactRoutes(v1)
	h.setupCompanyRoutes(v1)
	h.setupMeRoutes(v1)
	h.setupSearchRoutes(v1)

	h.engine.GET("/", Root())
	h.engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (h *APIService) setupAuthRoutes(group *gin.RouterGroup) {
	auth := group.Group("/auth")

	auth.POST("/register", Register(h.context))
	auth.POST("/login", Login(h.context))
	auth.GET("/google/login", GoogleLogin(h.context))
	auth.GET("/google/callback", GoogleCallback(h.context))
	auth.POST("/logout", Logout(h.context))
	auth.GET("/me", middleware.JWTAuthMiddleware(h.context), GetUserInfo(h.context))
	auth.POST("/invite", middleware.JWTAuthMiddleware(h.context), InviteUser(h.context))
}

func (h *APIService) setupJobRoutes(group *gin.RouterGroup) {
	jobs := group.Group("/jobs")
	jobs.Use(middleware.JWTAuthMiddleware(h.context))

	jobs.POST("", CreateJob(h.context))
	jobs.GET("", GetJobs(h.context))
	jobs.GET("/:jobID", GetJob(h.context))
	jobs.PUT("/:jobID", UpdateJob(h.context))
	jobs.DELETE("/:jobID", DeleteJob(h.context))
	jobs.POST("/:jobID/status", CreateJobStatusEvent(h.context))
}

func (h *APIService) setupCandidateRoutes(group *gin.RouterGroup) {
	candidates := group.Group("/candidates")
	candidates.Use(middleware.JWTAuthMiddleware(h.context))

	candidates.POST("", CreateCandidate(h.context))
	candidates.GET("", GetCandidates(h.context))
	candidates.GET("/:candidateID", GetCandidate(h.context))
	candidates.PUT("/:candidateID", UpdateCandidate(h.context))
	candidates.DELETE("/:candidateID", DeleteCandidate(h.context))
	candidates.GET("/:candidateID/resumes", GetResumesByCandidate(h.context))
}

func (h *APIService) setupApplicationRoutes(group *gin.RouterGroup) {
	applications := group.Group("/applications")
	applications.Use(middleware.JWTAuthMiddleware(h.context))

	applications.POST("", CreateApplication(h.context))
	applications.GET("", GetApplications(h.context))
	applications.GET("/:applicationID", GetApplication(h.context))
	applications.PUT("/:applicationID", UpdateApplication(h.context))
	applications.DELETE("/:applicationID", DeleteApplication(h.context))
	applications.POST("/:applicationID/status", CreateApplicationStatusEvent(h.context))
	applications.POST("/:applicationID/interviews", CreateInterview(h.context))
}

func (h *APIService) setupResumeRoutes(group *gin.RouterGroup) {
	resumes := group.Group("/resumes")
	resumes.Use(middleware.JWTAuthMiddleware(h.context))

	resumes.POST("", CreateResume(h.context))
	resumes.GET("/:resumeID", GetResume(h.context))
	resumes.PUT("/:resumeID", UpdateResume(h.context))
	resumes.DELETE("/:resumeID", DeleteResume(h.context))
	resumes.GET("/:resumeID/download", DownloadResume(h.context))
}

func (h *APIService) setupInterviewRoutes(group *gin.RouterGroup) {
	interviews := group.Group("/interviews")
	interviews.Use(middleware.JWTAuthMiddleware(h.context))

	interviews.GET("/:interviewID", GetInterview(h.context))
	interviews.POST("/:interviewID/evaluations", CreateEvaluation(h.context))
}

func (h *APIService) setupRoleRoutes(group *gin.RouterGroup) {
	roles := group.Group("/roles")
	roles.Use(middleware.JWTAuthMiddleware(h.context))
	roles.Use(middleware.RequireRole("Administrator"))

	roles.POST("", CreateRole(h.context))
	roles.GET("", GetRoles(h.context))
	roles.GET("/:roleID", GetRole(h.context))
	roles.PUT("/:roleID", UpdateRole(h.context))
	roles.DELETE("/:roleID", DeleteRole(h.context))
}

func (h *APIService) setupDepartmentRoutes(group *gin.RouterGroup) {
	departments := group.Group("/departments")
	departments.Use(middleware.JWTAuthMiddleware(h.context))

	departments.GET("/:departmentID", GetDepartment(h.context))
	departments.PUT("/:departmentID", UpdateDepartment(h.context))
	departments.DELETE("/:departmentID", DeleteDepartment(h.context))
}

func (h *APIService) setupContactRoutes(group *gin.RouterGroup) {
	contacts := group.Group("/contacts")
	contacts.Use(middleware.JWTAuthMiddleware(h.context))

	contacts.POST("", CreateContact(h.context))
	contacts.GET("/:contactID", GetContact(h.context))
	contacts.PUT("/:contactID", UpdateContact(h.context))
	contacts.DELETE("/:contactID", DeleteContact(h.context))
}

func (h *APIService) setupCompanyRoutes(group *gin.RouterGroup) {
	companies := group.Group("/companies")
	companies.Use(middleware.JWTAuthMiddleware(h.context))

	companies.GET("/members", GetCompanyMembers(h.context))
	companies.POST("/:companyID/departments", CreateDepartment(h.context))
	companies.GET("/:companyID/departments", GetDepartments(h.context))
	companies.GET("/:companyID/contacts", GetContacts(h.context))
}

func (h *APIService) setupMeRoutes(group *gin.RouterGroup) {
	me := group.Group("/me")
	me.Use(middleware.JWTAuthMiddleware(h.context))
	me.Use(middleware.RequireRole("Candidate"))

	me.GET("/profile", GetMyProfile(h.context))
	me.PUT("/profile", UpdateMyProfile(h.context))
	me.GET("/resumes", GetMyResumes(h.context))
	me.GET("/interviews", GetMyInterviews(h.context))
}

func (h *APIService) setupSearchRoutes(group *gin.RouterGroup) {
	search := group.Group("/search")
	search.Use(middleware.JWTAuthMiddleware(h.context))

	search.GET("", SearchRecords(h.context))
}
