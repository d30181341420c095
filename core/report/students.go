package report

import "github.com/su-ri-ya/littlechampions/core/student"

// Count is the number of items sharing a key.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// countBy counts the students by key, keeping the first-seen key order.
func countBy(students []student.Student, key func(student.Student) string) []Count {
	counts := []Count{}
	index := make(map[string]int)
	for _, s := range students {
		k := key(s)
		if i, ok := index[k]; ok {
			counts[i].Count++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, Count{Key: k, Count: 1})
	}
	return counts
}

func GradeDistribution(students []student.Student) []Count {
	return countBy(students, func(s student.Student) string { return s.Grade })
}

func StatusDistribution(students []student.Student) []Count {
	return countBy(students, func(s student.Student) string { return s.Status })
}
