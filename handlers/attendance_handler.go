package handlers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"chronosecure/models"
	"chronosecure/pkg/attendance"
	"chronosecure/pkg/calendar"
	"chronosecure/pkg/paseto"
	"chronosecure/repository"
	util "chronosecure/pkg/utils"
)

// minLivenessScore is the floor below which a photo capture is treated as a
// spoofing attempt and the event is refused outright.
const minLivenessScore = 0.6

type AttendanceHandler struct {
	attendanceRepo repository.AttendanceRepository
	employeeRepo   repository.EmployeeRepository
	companyRepo    repository.CompanyRepository
	timeOffRepo    repository.TimeOffRepository
	kioskRepo      repository.KioskRepository
	calendarRepo   repository.CalendarRepository
}

func NewAttendanceHandler(
	attendanceRepo repository.AttendanceRepository,
	employeeRepo repository.EmployeeRepository,
	companyRepo repository.CompanyRepository,
	timeOffRepo repository.TimeOffRepository,
	kioskRepo repository.KioskRepository,
	calendarRepo repository.CalendarRepository,
) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		companyRepo:    companyRepo,
		timeOffRepo:    timeOffRepo,
		kioskRepo:      kioskRepo,
		calendarRepo:   calendarRepo,
	}
}

func machineEvents(events []models.AttendanceEvent) []attendance.Event {
	silhouette := make([]attendance.Event, len(events))
	for i, ev := range events {
		silhouette[i] = attendance.Event{
			Type:      attendance.EventType(ev.EventType),
			Timestamp: ev.Timestamp,
		}
	}
	return silhouette
}

func dayBoundsUTC(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// LogEvent godoc
// @Summary Record a clock event
// @Description Validates the proposed event against the employee's current session state and appends it to the event log
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body models.AttendanceLogPayload true "Clock event"
// @Success 201 {object} models.AttendanceAcceptedResponse "Event recorded"
// @Failure 400 {object} models.ErrorResponse "Invalid payload or liveness check failed"
// @Failure 403 {object} models.RejectionResponse "Company suspended"
// @Failure 404 {object} models.ErrorResponse "Company or employee not found"
// @Failure 409 {object} models.RejectionResponse "Event out of sequence"
// @Router /attendance/log [post]
func (h *AttendanceHandler) LogEvent(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	var payload models.AttendanceLogPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	employeeID, err := primitive.ObjectIDFromHex(payload.EmployeeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	ctx := c.Context()

	company, err := h.companyRepo.FindByID(ctx, claims.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found", "reason": "TenantNotFound"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up company"})
	}

	employee, err := h.employeeRepo.FindByID(ctx, company.ID, employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up employee"})
	}
	if employee == nil || !employee.IsActive {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found or does not belong to this company"})
	}

	// A low-confidence photo capture is refused before any state is touched.
	if payload.PhotoBase64 != "" && payload.ConfidenceScore != nil && *payload.ConfidenceScore < minLivenessScore {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Liveness check failed. Please ensure you are present in front of the camera."})
	}

	// Serialize validation and append per (company, employee) so concurrent
	// submissions never both pass against the same prior state.
	unlock := h.attendanceRepo.LockEmployee(company.ID, employeeID)
	defer unlock()

	now := time.Now().UTC()
	dayStart, dayEnd := dayBoundsUTC(now)
	todayEvents, err := h.attendanceRepo.FindEmployeeEventsBetween(ctx, company.ID, employeeID, dayStart, dayEnd)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load attendance history"})
	}

	session := attendance.SessionEvents(machineEvents(todayEvents))
	proposed := attendance.EventType(payload.EventType)

	if err := attendance.ValidateTransition(proposed, session, company.IsActive); err != nil {
		switch err {
		case attendance.ErrTenantInactive:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":  "Your company account is suspended. Contact support.",
				"reason": attendance.ReasonTenantInactive,
			})
		default:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":  "This action is not available right now, try refreshing",
				"reason": attendance.ReasonOutOfSequence,
			})
		}
	}

	event := &models.AttendanceEvent{
		ID:                primitive.NewObjectID(),
		CompanyID:         company.ID,
		EmployeeID:        employeeID,
		EventType:         payload.EventType,
		Timestamp:         now,
		DeviceID:          payload.DeviceID,
		PhotoVerified:     payload.PhotoBase64 != "",
		BiometricVerified: payload.BiometricVerified,
		ConfidenceScore:   payload.ConfidenceScore,
	}

	if _, err := h.attendanceRepo.Append(ctx, event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record event"})
	}

	if payload.DeviceID != "" {
		if err := h.kioskRepo.TouchLastSeen(ctx, payload.DeviceID); err != nil {
			log.Printf("Warning: failed to update kiosk last seen for %s: %v", payload.DeviceID, err)
		}
	}

	// Showing up invalidates any leave covering today. A failure here must
	// not fail the already-recorded event.
	if rejected, err := h.timeOffRepo.AutoRejectOverlapping(ctx, employeeID, now.Format(calendar.DateLayout)); err != nil {
		log.Printf("Warning: failed to auto-reject time off for employee %s: %v", employeeID.Hex(), err)
	} else if rejected > 0 {
		log.Printf("Auto-rejected %d time-off request(s) for employee %s after attendance", rejected, employeeID.Hex())
	}

	next, incErr := attendance.NextEventType(append(session, attendance.Event{Type: proposed, Timestamp: now}))
	if incErr != nil {
		log.Printf("State inconsistency for employee %s: %v", employeeID.Hex(), incErr)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":            "Event recorded",
		"event":              event,
		"next_event_type":    next,
		"state_inconsistent": incErr != nil,
	})
}

// NextEvent godoc
// @Summary Get the next expected clock event
// @Description Returns the canonical next event for the employee's open session, plus whether a break is currently available
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} models.NextEventResponse
// @Failure 404 {object} models.ErrorResponse "Employee not found"
// @Router /attendance/next-event/{employeeID} [get]
func (h *AttendanceHandler) NextEvent(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	employeeID, err := primitive.ObjectIDFromHex(c.Params("employeeID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	ctx := c.Context()
	employee, err := h.employeeRepo.FindByID(ctx, claims.CompanyID, employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up employee"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	dayStart, dayEnd := dayBoundsUTC(time.Now().UTC())
	todayEvents, err := h.attendanceRepo.FindEmployeeEventsBetween(ctx, claims.CompanyID, employeeID, dayStart, dayEnd)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load attendance history"})
	}

	session := attendance.SessionEvents(machineEvents(todayEvents))
	state := attendance.StateAfter(session)
	next, incErr := attendance.NextEventType(session)
	if incErr != nil {
		log.Printf("State inconsistency for employee %s: %v", employeeID.Hex(), incErr)
	}

	return c.Status(fiber.StatusOK).JSON(models.NextEventResponse{
		NextEventType:     string(next),
		State:             string(state),
		BreakAvailable:    state == attendance.StateIn,
		StateInconsistent: incErr != nil,
	})
}

// GetLogs godoc
// @Summary Get attendance logs
// @Description Paginated event log for the company within a date range, joined with employee details
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {object} object{logs=[]models.AttendanceEventWithEmployee,total=int}
// @Failure 400 {object} models.ErrorResponse
// @Router /attendance/logs [get]
func (h *AttendanceHandler) GetLogs(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	start, end, err := parseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit", "50"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 50
	}

	logs, total, err := h.attendanceRepo.FindLogsWithEmployee(c.Context(), claims.CompanyID, start, end, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch attendance logs"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"logs": logs, "total": total})
}

// TodayStats godoc
// @Summary Get dashboard stats for today
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TodayStats
// @Router /attendance/today-stats [get]
func (h *AttendanceHandler) TodayStats(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)
	ctx := c.Context()

	totalEmployees, err := h.employeeRepo.CountActiveByCompany(ctx, claims.CompanyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count employees"})
	}

	dayStart, dayEnd := dayBoundsUTC(time.Now().UTC())
	events, err := h.attendanceRepo.FindCompanyEventsBetween(ctx, claims.CompanyID, dayStart, dayEnd)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load today's events"})
	}

	// Latest event per employee decides whether they count as in or out.
	latest := make(map[primitive.ObjectID]string)
	for _, ev := range events {
		latest[ev.EmployeeID] = ev.EventType
	}

	stats := models.TodayStats{TotalEmployees: totalEmployees}
	for _, eventType := range latest {
		switch attendance.EventType(eventType) {
		case attendance.ClockIn, attendance.BreakEnd:
			stats.ClockedIn++
		default:
			stats.ClockedOut++
		}
	}

	pending, err := h.timeOffRepo.CountPendingByCompany(ctx, claims.CompanyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to count pending requests"})
	}
	stats.PendingRequests = pending

	return c.Status(fiber.StatusOK).JSON(stats)
}

// GetHours godoc
// @Summary Get daily hour breakdown for an employee
// @Description Per-day total/regular/overtime hours over a date range, with the day's pay multiplier attached (not applied)
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param employeeID path string true "Employee ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} models.DailyHours
// @Failure 400 {object} models.ErrorResponse
// @Router /attendance/hours/{employeeID} [get]
func (h *AttendanceHandler) GetHours(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	employeeID, err := primitive.ObjectIDFromHex(c.Params("employeeID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee id"})
	}

	start, end, err := parseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx := c.Context()
	company, err := h.companyRepo.FindByID(ctx, claims.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found", "reason": "TenantNotFound"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up company"})
	}

	events, err := h.attendanceRepo.FindEmployeeEventsBetween(ctx, company.ID, employeeID, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load attendance events"})
	}

	explicitEntries, err := h.calendarRepo.FindByCompanyAndDateRange(ctx, company.ID,
		start.Format(calendar.DateLayout), end.AddDate(0, 0, -1).Format(calendar.DateLayout))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load calendar entries"})
	}

	byDay := make(map[string][]models.AttendanceEvent)
	for _, ev := range events {
		key := ev.Timestamp.UTC().Format(calendar.DateLayout)
		byDay[key] = append(byDay[key], ev)
	}

	report := []models.DailyHours{}
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(calendar.DateLayout)
		dayEvents, ok := byDay[key]
		if !ok {
			continue
		}

		summary := attendance.ComputeHours(machineEvents(dayEvents), company.OvertimeThresholdHours)

		var explicit *models.CalendarEntry
		if entry, found := explicitEntries[key]; found {
			explicit = &entry
		}
		dayEntry := calendar.Resolve(explicit, company.ID, d)

		report = append(report, models.DailyHours{
			Date:          key,
			TotalHours:    summary.TotalHours,
			BreakHours:    summary.BreakHours,
			RegularHours:  summary.RegularHours,
			OvertimeHours: summary.OvertimeHours,
			DayType:       dayEntry.DayType,
			PayMultiplier: dayEntry.PayMultiplier,
		})
	}

	return c.Status(fiber.StatusOK).JSON(report)
}

// parseDateRange converts inclusive date query params to a [start, end)
// UTC instant window.
func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(calendar.DateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}
	end, err := time.Parse(calendar.DateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "end_date must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "end_date must not be before start_date")
	}
	return start, end.AddDate(0, 0, 1), nil
}
