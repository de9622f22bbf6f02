package apierrors

const (
	MsgValidationFailed = "validationFailed"

	MsgInvalidUserPayload = "invalidUserPayload"
	MsgUserNotFound       = "userNotFound"
	MsgFailCreateUser     = "failCreateUser"
	MsgFailListUsers      = "failListUsers"
	MsgFailGetUser        = "failGetUser"
	MsgFailUpdateUser     = "failUpdateUser"

	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailListTasks      = "failListTasks"
	MsgFailGetTask        = "failGetTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgInvalidActivityPayload = "invalidActivityPayload"
	MsgActivityNotFound       = "activityNotFound"
	MsgFailCreateActivity     = "failCreateActivity"
	MsgFailListActivities     = "failListActivities"
	MsgFailGetActivity        = "failGetActivity"
	MsgFailUpdateActivity     = "failUpdateActivity"
	MsgFailDeleteActivity     = "failDeleteActivity"

	MsgInvalidCalendarWindow = "invalidCalendarWindow"
	MsgFailCalendar          = "failCalendar"
	MsgFailStats             = "failStats"
)
