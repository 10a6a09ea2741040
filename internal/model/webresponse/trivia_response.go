package webresponse

// QuestionData is the display record of a question.
type QuestionData struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type CategoryListResponse struct {
	Success         bool           `json:"success"`
	Categories      map[int]string `json:"categories"`
	TotalCategories int            `json:"total_categories"`
}

type QuestionListResponse struct {
	Success         bool           `json:"success"`
	Questions       []QuestionData `json:"questions"`
	TotalQuestions  int            `json:"total_questions"`
	Categories      map[int]string `json:"categories"`
	CurrentCategory *int           `json:"current_category"`
}

type DeleteQuestionResponse struct {
	Success        bool           `json:"success"`
	Deleted        int            `json:"deleted"`
	Questions      []QuestionData `json:"questions"`
	TotalQuestions int            `json:"total_questions"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
