package dto

type TaskItem struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user_id"`
	Title             string  `json:"title"`
	Description       *string `json:"description,omitempty"`
	Subject           string  `json:"subject"`
	TaskType          string  `json:"task_type"`
	Priority          string  `json:"priority"`
	DueDate           string  `json:"due_date"`
	DueTime           *string `json:"due_time,omitempty"`
	EstimatedDuration *int    `json:"estimated_duration,omitempty"`
	Completed         bool    `json:"completed"`
	CompletedAt       *string `json:"completed_at,omitempty"`
	Color             string  `json:"color"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title             string  `json:"title" binding:"required,max=255"`
	Description       *string `json:"description" binding:"omitempty,max=65535"`
	Subject           string  `json:"subject" binding:"required,max=255"`
	TaskType          string  `json:"task_type" binding:"required,oneof=assignment test project homework study"`
	Priority          *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate           string  `json:"due_date" binding:"required"`
	DueTime           *string `json:"due_time" binding:"omitempty,max=16"`
	EstimatedDuration *int    `json:"estimated_duration" binding:"omitempty,gt=0"`
	Color             *string `json:"color" binding:"omitempty,max=32"`
}

type UpdateTaskRequest struct {
	Title             *string `json:"title" binding:"omitempty,max=255"`
	Description       *string `json:"description" binding:"omitempty,max=65535"`
	Subject           *string `json:"subject" binding:"omitempty,max=255"`
	TaskType          *string `json:"task_type" binding:"omitempty,oneof=assignment test project homework study"`
	Priority          *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate           *string `json:"due_date" binding:"omitempty"`
	DueTime           *string `json:"due_time" binding:"omitempty,max=16"`
	EstimatedDuration *int    `json:"estimated_duration" binding:"omitempty,gt=0"`
	Completed         *bool   `json:"completed" binding:"omitempty"`
	Color             *string `json:"color" binding:"omitempty,max=32"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
