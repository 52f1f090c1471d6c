package dashboard

import "time"

// Sample data used to seed an empty backend on startup. Purely a demo
// convenience; nothing else depends on these records.

func SampleAnnouncements() []AnnouncementInput {
	return []AnnouncementInput{
		{
			Title:   "Welcome to Spring Semester",
			Content: "Welcome to the Spring Semester 2025! We hope you are excited about your classes. Please check your schedule and make sure you have all required materials.",
			Author:  "Dean Johnson",
			Date:    datePtr(2025, time.January, 15),
		},
		{
			Title:   "Library Hours Extended",
			Content: "The university library will extend its opening hours during the final exam period. Starting next week, the library will be open 24/7.",
			Author:  "Library Services",
			Date:    datePtr(2025, time.February, 10),
		},
		{
			Title:   "Campus Career Fair",
			Content: "Don't miss the Spring Career Fair on March 15. Many top companies will be present to recruit students for internships and full-time positions.",
			Author:  "Career Services",
			Date:    datePtr(2025, time.March, 1),
		},
	}
}

func SampleQuizzes() []QuizInput {
	return []QuizInput{
		{
			Title:       "Midterm Review Quiz",
			Description: "This quiz covers all material from weeks 1-5. It will help you prepare for the upcoming midterm exam.",
			Course:      "Introduction to Computer Science",
			DueDate:     datePtr(2025, time.March, 10),
			TotalPoints: 50,
			Questions:   20,
		},
		{
			Title:       "Chapter 7 Assessment",
			Description: "Assessment covering Chapter 7: Database Normalization. Focus on 1NF, 2NF, and 3NF concepts.",
			Course:      "Database Management",
			DueDate:     datePtr(2025, time.March, 15),
			TotalPoints: 30,
			Questions:   15,
		},
		{
			Title:       "Final Project Proposal",
			Description: "Submit your group project proposal including team members, project outline, and timeline.",
			Course:      "Web Development",
			DueDate:     datePtr(2025, time.March, 20),
			TotalPoints: 100,
			Questions:   5,
		},
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
