package entity

import "trivia-backend/internal/model/webresponse"

const TableNameQuestion = "questions"

type Question struct {
	ID         int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Question   string `gorm:"column:question;not null" json:"question"`
	Answer     string `gorm:"column:answer;not null" json:"answer"`
	Category   int    `gorm:"column:category" json:"category"`
	Difficulty int    `gorm:"column:difficulty" json:"difficulty"`
}

func (*Question) TableName() string {
	return TableNameQuestion
}

func (q *Question) Format() webresponse.QuestionData {
	return webresponse.QuestionData{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func FormatQuestions(questions []*Question) []webresponse.QuestionData {
	out := make([]webresponse.QuestionData, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Format())
	}
	return out
}
