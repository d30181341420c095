package report

import (
	"github.com/su-ri-ya/littlechampions/core/class"
	"github.com/su-ri-ya/littlechampions/core/teacher"
)

type (
	Workload struct {
		TeacherID string `json:"teacher_id"`
		Name      string `json:"name"`
		Subject   string `json:"subject"`
		Classes   int    `json:"classes"`
		Students  int    `json:"students"`
	}

	TimetableEntry struct {
		ClassID     string `json:"class_id"`
		ClassName   string `json:"class_name"`
		Subject     string `json:"subject"`
		Grade       string `json:"grade"`
		Room        string `json:"room"`
		Schedule    string `json:"schedule"`
		TeacherName string `json:"teacher_name"`
	}
)

// TeacherWorkload counts the classes of every teacher and the students enrolled in them.
func TeacherWorkload(teachers []teacher.Teacher, classes []class.Class) []Workload {
	loads := make([]Workload, 0, len(teachers))
	for _, t := range teachers {
		w := Workload{TeacherID: t.ID, Name: t.Name, Subject: t.Subject}
		for _, c := range classes {
			if c.TeacherID == t.ID {
				w.Classes++
				w.Students += len(c.EnrolledStudents)
			}
		}
		loads = append(loads, w)
	}
	return loads
}

func Timetable(classes []class.Class, teachers []teacher.Teacher) []TimetableEntry {
	entries := make([]TimetableEntry, 0, len(classes))
	for _, c := range classes {
		entries = append(entries, TimetableEntry{
			ClassID:     c.ID,
			ClassName:   c.Name,
			Subject:     c.Subject,
			Grade:       c.Grade,
			Room:        c.Room,
			Schedule:    c.Schedule,
			TeacherName: TeacherName(teachers, c.TeacherID),
		})
	}
	return entries
}
