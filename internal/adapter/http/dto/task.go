package dto

type TaskItem struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Duration         int     `json:"duration"`
	StartDate        string  `json:"start_date"`
	StartTime        string  `json:"start_time"`
	Completed        bool    `json:"completed"`
	Category         string  `json:"category"`
	CategoryColor    string  `json:"category_color"`
	Notes            *string `json:"notes,omitempty"`
	HasRepeat        bool    `json:"has_repeat"`
	RepeatType       *string `json:"repeat_type,omitempty"`
	RepeatInterval   int     `json:"repeat_interval"`
	RepeatEndDate    *string `json:"repeat_end_date,omitempty"`
	IsRepeatInstance bool    `json:"is_repeat_instance"`
	CreatedAt        string  `json:"created_at,omitempty"`
	UpdatedAt        string  `json:"updated_at,omitempty"`
}

type TaskDayView struct {
	Date  string     `json:"date"`
	Tasks []TaskItem `json:"tasks"`
}

type SaveTaskRequest struct {
	Title          string  `json:"title" binding:"required,max=255"`
	Duration       *int    `json:"duration" binding:"required,gt=0"`
	StartDate      string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	StartTime      string  `json:"start_time" binding:"required,datetime=15:04"`
	Category       string  `json:"category" binding:"omitempty,max=64"`
	CategoryColor  string  `json:"category_color" binding:"omitempty,hexcolor"`
	Notes          *string `json:"notes" binding:"omitempty,max=65535"`
	HasRepeat      bool    `json:"has_repeat"`
	RepeatType     *string `json:"repeat_type" binding:"omitempty,oneof=daily weekly monthly custom"`
	RepeatInterval *int    `json:"repeat_interval" binding:"omitempty,gt=0"`
	RepeatEndDate  *string `json:"repeat_end_date" binding:"omitempty,datetime=2006-01-02"`
}

type ToggleCompletionRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}
