package domain

import "time"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type ViewType string

const (
	ViewMonth ViewType = "month"
	ViewWeek  ViewType = "week"
	ViewDay   ViewType = "day"
)

const (
	MinYearLevel = 9
	MaxYearLevel = 12
)

type User struct {
	ID          string
	Name        string
	Email       string
	YearLevel   int
	Theme       Theme
	DefaultView ViewType
	Subjects    []string
	CreatedAt   time.Time
}

type CreateUserInput struct {
	ID        *string
	Name      string
	Email     string
	YearLevel int
	Subjects  []string
}

type UpdateUserInput struct {
	Name        *string
	Email       *string
	YearLevel   *int
	Theme       *Theme
	DefaultView *ViewType
	Subjects    []string
}
