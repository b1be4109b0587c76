package handlers

import (
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

type CalendarHandler struct {
	calendarRepo   repository.CalendarRepository
	attendanceRepo repository.AttendanceRepository
	timeOffRepo    repository.TimeOffRepository
	employeeRepo   repository.EmployeeRepository
}

func NewCalendarHandler(
	calendarRepo repository.CalendarRepository,
	attendanceRepo repository.AttendanceRepository,
	timeOffRepo repository.TimeOffRepository,
	employeeRepo repository.EmployeeRepository,
) *CalendarHandler {
	return &CalendarHandler{
		calendarRepo:   calendarRepo,
		attendanceRepo: attendanceRepo,
		timeOffRepo:    timeOffRepo,
		employeeRepo:   employeeRepo,
	}
}

// GetRange godoc
// @Summary Get the resolved calendar for a date range
// @Description Every date in the range gets an entry: explicit ones verbatim, the rest synthesized defaults
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} models.CalendarEntry
// @Failure 400 {object} models.ErrorResponse
// @Router /calendar [get]
func (h *CalendarHandler) GetRange(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	start, end, err := parseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	explicit, err := h.calendarRepo.FindByCompanyAndDateRange(c.Context(), claims.CompanyID,
		start.Format(calendar.DateLayout), end.AddDate(0, 0, -1).Format(calendar.DateLayout))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load calendar entries"})
	}

	resolved := calendar.ResolveRange(explicit, claims.CompanyID, start, end.AddDate(0, 0, -1))
	return c.Status(fiber.StatusOK).JSON(resolved)
}

// BulkSet godoc
// @Summary Classify a set of dates
// @Description Upserts one classification over explicit dates or an expanded recurrence rule. The whole set is written or none of it.
// @Tags Calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entries body models.CalendarBulkSetPayload true "Dates and classification"
// @Success 200 {object} object{message=string,dates_written=int}
// @Failure 400 {object} models.RejectionResponse "Empty date set or invalid multiplier"
// @Router /calendar [post]
func (h *CalendarHandler) BulkSet(c *fiber.Ctx) error {
	claims := c.Locals("user").(*paseto.Claims)

	var payload models.CalendarBulkSetPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	dates := payload.Dates
	if payload.RecurrenceRule != "" {
		if payload.StartDate == "" || payload.EndDate == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_date and end_date are required with recurrence_rule"})
		}
		expanded, err := calendar.ExpandRecurrence(payload.RecurrenceRule, payload.StartDate, payload.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid recurrence rule", "details": err.Error()})
		}
		dates = append(dates, expanded...)
	}

	if err := calendar.ValidateRangeWrite(dates, payload.DayType, payload.PayMultiplier); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "reason": calendar.RejectionReason(err)})
	}

	written, err := h.calendarRepo.BulkUpsert(c.Context(), claims.CompanyID, dates, payload.DayType, payload.PayMultiplier, payload.Description)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save calendar entries"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Calendar updated", "dates_written": written})
}

// EmployeeView godoc
// @Summary Get an employee's combined calendar
// @Description Per-day classification merged with attendance presence and approved leave
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param employeeID path string true "Employee ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} models.EmployeeCalendarDay
// @Failure 404 {object} models.ErrorResponse "Employee not found"
// @Router /calendar/employee/{employeeID} [get]
func (h *CalendarHandler) EmployeeView(c *fiber.Ctx) error {
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
	employee, err := h.employeeRepo.FindByID(ctx, claims.CompanyID, employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up employee"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	lastDate := end.AddDate(0, 0, -1).Format(calendar.DateLayout)

	explicit, err := h.calendarRepo.FindByCompanyAndDateRange(ctx, claims.CompanyID, start.Format(calendar.DateLayout), lastDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load calendar entries"})
	}

	events, err := h.attendanceRepo.FindEmployeeEventsBetween(ctx, claims.CompanyID, employeeID, start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load attendance events"})
	}

	leave, err := h.timeOffRepo.FindApprovedForEmployeeBetween(ctx, employeeID, start.Format(calendar.DateLayout), lastDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load time off"})
	}

	eventsByDay := make(map[string][]models.AttendanceEvent)
	for _, ev := range events {
		key := ev.Timestamp.UTC().Format(calendar.DateLayout)
		eventsByDay[key] = append(eventsByDay[key], ev)
	}

	today := time.Now().UTC().Format(calendar.DateLayout)

	days := []models.EmployeeCalendarDay{}
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(calendar.DateLayout)

		var explicitEntry *models.CalendarEntry
		if entry, found := explicit[key]; found {
			explicitEntry = &entry
		}
		entry := calendar.Resolve(explicitEntry, claims.CompanyID, d)

		day := models.EmployeeCalendarDay{
			Date:          key,
			DayType:       entry.DayType,
			PayMultiplier: entry.PayMultiplier,
			Description:   entry.Description,
		}

		dayEvents := eventsByDay[key]
		onLeave, leaveReason := leaveCovering(leave, key)

		// Presence beats everything else, including leave that was approved
		// before the employee showed up anyway.
		switch {
		case len(dayEvents) > 0:
			day.Status = models.DayStatusPresent
			for _, ev := range dayEvents {
				switch attendance.EventType(ev.EventType) {
				case attendance.ClockIn:
					if day.CheckInTime == "" {
						day.CheckInTime = ev.Timestamp.UTC().Format("15:04")
					}
				case attendance.ClockOut:
					day.CheckOutTime = ev.Timestamp.UTC().Format("15:04")
				}
			}
		case onLeave:
			day.Status = models.DayStatusLeave
			day.LeaveReason = leaveReason
		case entry.DayType == models.DayTypeHoliday:
			day.Status = models.DayStatusHoliday
		case entry.DayType == models.DayTypeWeekend:
			day.Status = models.DayStatusWeekend
		case key > today:
			day.Status = models.DayStatusFuture
		default:
			day.Status = models.DayStatusAbsent
		}

		days = append(days, day)
	}

	return c.Status(fiber.StatusOK).JSON(days)
}

// leaveCovering reports whether any approved request spans the date.
// Date strings are ISO formatted so string comparison orders correctly.
func leaveCovering(requests []models.TimeOffRequest, date string) (bool, string) {
	for _, req := range requests {
		if req.StartDate <= date && date <= req.EndDate {
			return true, req.Reason
		}
	}
	return false, ""
}
