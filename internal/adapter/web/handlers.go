package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyplanner/internal/adapter/http/validation"
	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

// genericFormError is what a form shows when something unexpected broke.
// Detail goes to the log, not the page.
const genericFormError = "Something went wrong, please try again."

type Handler struct {
	authService      ports.AuthService
	taskService      ports.TaskService
	activityService  ports.ActivityService
	dashboardService ports.DashboardService
	sessionTTL       time.Duration
}

func NewHandler(
	authService ports.AuthService,
	taskService ports.TaskService,
	activityService ports.ActivityService,
	dashboardService ports.DashboardService,
	sessionTTL time.Duration,
) *Handler {
	return &Handler{
		authService:      authService,
		taskService:      taskService,
		activityService:  activityService,
		dashboardService: dashboardService,
		sessionTTL:       sessionTTL,
	}
}

func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Email": ""})
}

func (h *Handler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	if email == "" || password == "" {
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": "Email and password are required.", "Email": email})
		return
	}

	// The password is a required form field but is never checked against
	// anything: no credential is stored for any account.
	_, session, err := h.authService.Login(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.HTML(http.StatusOK, "login.html", gin.H{"Error": "No account with that email.", "Email": email})
			return
		}

		zap.L().Error("login failed", zap.Error(err))
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": genericFormError, "Email": email})
		return
	}

	SetSessionCookie(c, session.Token, h.sessionTTL)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"Name": "", "Email": "", "YearLevel": ""})
}

func (h *Handler) Signup(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	yearLevel, yearErr := strconv.Atoi(c.PostForm("year_level"))

	form := gin.H{"Name": name, "Email": email, "YearLevel": c.PostForm("year_level")}

	if name == "" || email == "" || password == "" || yearErr != nil {
		form["Error"] = "All fields are required."
		c.HTML(http.StatusOK, "signup.html", form)
		return
	}

	_, session, err := h.authService.Signup(c.Request.Context(), domain.CreateUserInput{
		Name:      name,
		Email:     email,
		YearLevel: yearLevel,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			form["Error"] = "That email is already registered."
		case errors.Is(err, domain.ErrYearLevelRange):
			form["Error"] = "Year level must be between 9 and 12."
		default:
			zap.L().Error("signup failed", zap.Error(err))
			form["Error"] = genericFormError
		}
		c.HTML(http.StatusOK, "signup.html", form)
		return
	}

	SetSessionCookie(c, session.Token, h.sessionTTL)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookie); err == nil {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			zap.L().Warn("logout failed", zap.Error(err))
		}
	}
	ClearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) Dashboard(c *gin.Context) {
	user, ok := SignedInUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	stats, err := h.dashboardService.Stats(c.Request.Context(), user.ID)
	if err != nil {
		zap.L().Error("failed to load dashboard stats", zap.String("user_id", user.ID), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "dashboard.html", gin.H{"User": user, "Error": genericFormError})
		return
	}

	pending := false
	tasks, err := h.taskService.ListUserTasks(c.Request.Context(), user.ID, domain.TaskFilter{Completed: &pending})
	if err != nil {
		zap.L().Error("failed to load dashboard tasks", zap.String("user_id", user.ID), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "dashboard.html", gin.H{"User": user, "Error": genericFormError})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"User":  user,
		"Stats": stats,
		"Tasks": tasks,
	})
}

func (h *Handler) CalendarPage(c *gin.Context) {
	user, ok := SignedInUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	// The page shows one month at a time, current month by default.
	now := time.Now().UTC()
	month := now
	if value := c.Query("month"); value != "" {
		if parsed, err := time.Parse("2006-01", value); err == nil {
			month = parsed
		}
	}

	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	data, err := h.dashboardService.Calendar(c.Request.Context(), user.ID, domain.CalendarWindow{Start: &start, End: &end})
	if err != nil {
		zap.L().Error("failed to load calendar", zap.String("user_id", user.ID), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "calendar.html", gin.H{"User": user, "Error": genericFormError})
		return
	}

	c.HTML(http.StatusOK, "calendar.html", gin.H{
		"User":       user,
		"Month":      start.Format("January 2006"),
		"MonthParam": start.Format("2006-01"),
		"PrevMonth":  start.AddDate(0, -1, 0).Format("2006-01"),
		"NextMonth":  start.AddDate(0, 1, 0).Format("2006-01"),
		"Tasks":      data.Tasks,
		"Activities": data.Activities,
	})
}

func (h *Handler) ShowNewTask(c *gin.Context) {
	user, _ := SignedInUser(c)
	c.HTML(http.StatusOK, "task_form.html", gin.H{"User": user})
}

func (h *Handler) CreateTask(c *gin.Context) {
	user, ok := SignedInUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	input, err := taskInputFromForm(c)
	if err != nil {
		c.HTML(http.StatusOK, "task_form.html", gin.H{"User": user, "Error": "Please fill in every required field."})
		return
	}

	if _, err := h.taskService.CreateTask(c.Request.Context(), user.ID, input); err != nil {
		zap.L().Error("failed to create task from form", zap.String("user_id", user.ID), zap.Error(err))
		c.HTML(http.StatusOK, "task_form.html", gin.H{"User": user, "Error": genericFormError})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) CompleteTask(c *gin.Context) {
	user, ok := SignedInUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	completed := true
	if _, err := h.taskService.UpdateTask(c.Request.Context(), c.Param("id"), domain.UpdateTaskInput{Completed: &completed}); err != nil {
		zap.L().Warn("failed to complete task", zap.String("user_id", user.ID), zap.String("task_id", c.Param("id")), zap.Error(err))
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) ShowNewActivity(c *gin.Context) {
	user, _ := SignedInUser(c)
	c.HTML(http.StatusOK, "activity_form.html", gin.H{"User": user})
}

func (h *Handler) CreateActivity(c *gin.Context) {
	user, ok := SignedInUser(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	input, err := activityInputFromForm(c)
	if err != nil {
		c.HTML(http.StatusOK, "activity_form.html", gin.H{"User": user, "Error": "Please fill in every required field."})
		return
	}

	if _, err := h.activityService.CreateActivity(c.Request.Context(), user.ID, input); err != nil {
		zap.L().Error("failed to create activity from form", zap.String("user_id", user.ID), zap.Error(err))
		c.HTML(http.StatusOK, "activity_form.html", gin.H{"User": user, "Error": genericFormError})
		return
	}

	c.Redirect(http.StatusSeeOther, "/calendar")
}

func taskInputFromForm(c *gin.Context) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(c.PostForm("title"))
	subject := strings.TrimSpace(c.PostForm("subject"))
	taskType := c.PostForm("task_type")
	if title == "" || subject == "" || taskType == "" {
		return domain.CreateTaskInput{}, errMissingFormField
	}

	dueDate, err := validation.ParseDatetime(c.PostForm("due_date"))
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	input := domain.CreateTaskInput{
		Title:    title,
		Subject:  subject,
		TaskType: domain.TaskType(taskType),
		Priority: domain.Priority(c.PostForm("priority")),
		DueDate:  dueDate,
	}

	if description := strings.TrimSpace(c.PostForm("description")); description != "" {
		input.Description = &description
	}

	if raw := c.PostForm("due_time"); raw != "" {
		value, err := validation.ParseTimeOfDay(raw)
		if err != nil {
			return domain.CreateTaskInput{}, err
		}
		input.DueTime = &value
	}

	if raw := c.PostForm("estimated_duration"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return domain.CreateTaskInput{}, errMissingFormField
		}
		input.EstimatedDuration = &minutes
	}

	return input, nil
}

func activityInputFromForm(c *gin.Context) (domain.CreateActivityInput, error) {
	title := strings.TrimSpace(c.PostForm("title"))
	activityType := c.PostForm("activity_type")
	if title == "" || activityType == "" {
		return domain.CreateActivityInput{}, errMissingFormField
	}

	start, err := validation.ParseDatetime(c.PostForm("start_datetime"))
	if err != nil {
		return domain.CreateActivityInput{}, err
	}

	end, err := validation.ParseDatetime(c.PostForm("end_datetime"))
	if err != nil {
		return domain.CreateActivityInput{}, err
	}

	input := domain.CreateActivityInput{
		Title:         title,
		ActivityType:  domain.ActivityType(activityType),
		StartDatetime: start,
		EndDatetime:   end,
	}

	if description := strings.TrimSpace(c.PostForm("description")); description != "" {
		input.Description = &description
	}

	if location := strings.TrimSpace(c.PostForm("location")); location != "" {
		input.Location = &location
	}

	return input, nil
}

var errMissingFormField = errors.New("missing form field")
