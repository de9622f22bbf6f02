package dto

type UserItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	YearLevel   int      `json:"year_level"`
	Theme       string   `json:"theme"`
	DefaultView string   `json:"default_view"`
	Subjects    []string `json:"subjects"`
	CreatedAt   string   `json:"created_at"`
}

type CreateUserRequest struct {
	ID        *string  `json:"id" binding:"omitempty,max=64"`
	Name      string   `json:"name" binding:"required,max=255"`
	Email     string   `json:"email" binding:"required,email,max=255"`
	YearLevel int      `json:"year_level" binding:"required,gte=9,lte=12"`
	Subjects  []string `json:"subjects" binding:"omitempty,dive,max=255"`
}

type UpdateUserRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Email       *string  `json:"email" binding:"omitempty,email,max=255"`
	YearLevel   *int     `json:"year_level" binding:"omitempty,gte=9,lte=12"`
	Theme       *string  `json:"theme" binding:"omitempty,oneof=light dark"`
	DefaultView *string  `json:"default_view" binding:"omitempty,oneof=month week day"`
	Subjects    []string `json:"subjects" binding:"omitempty,dive,max=255"`
}
