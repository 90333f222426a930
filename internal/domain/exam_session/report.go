package examsession

// TopicStat aggregates answered questions for one category. Unanswered
// questions never enter a bucket.
type TopicStat struct {
	Topic    string
	Correct  int
	Total    int
	Accuracy float64
}

// Report is the scored outcome of one finished attempt. Questions aliases
// the session's sequence; renderers should copy through View instead of
// holding onto it.
type Report struct {
	Score          float64
	CorrectCount   int
	IncorrectCount int
	TotalQuestions int
	Accuracy       float64
	Passed         bool
	TopicAnalysis  []TopicStat
	Questions      []Question
}

// Score grades a finished question sequence. Pure function: no session
// state is read or written. Wrong answers cost a quarter mark, unanswered
// questions cost nothing but still count toward the total. The pass mark
// compares the penalized score against 60% of the total, not raw accuracy.
func Score(questions []Question) Report {
	report := Report{
		TotalQuestions: len(questions),
		Questions:      questions,
	}

	buckets := make(map[string]int)
	for _, q := range questions {
		if !q.Answered() {
			continue
		}

		i, ok := buckets[q.Category]
		if !ok {
			i = len(report.TopicAnalysis)
			buckets[q.Category] = i
			report.TopicAnalysis = append(report.TopicAnalysis, TopicStat{Topic: q.Category})
		}
		report.TopicAnalysis[i].Total++

		if q.Correct() {
			report.CorrectCount++
			report.TopicAnalysis[i].Correct++
		} else {
			report.IncorrectCount++
		}
	}

	report.Score = float64(report.CorrectCount) - 0.25*float64(report.IncorrectCount)
	if report.TotalQuestions > 0 {
		report.Accuracy = float64(report.CorrectCount) / float64(report.TotalQuestions) * 100
		report.Passed = report.Score >= float64(report.TotalQuestions)*0.6
	}

	for i := range report.TopicAnalysis {
		stat := &report.TopicAnalysis[i]
		stat.Accuracy = float64(stat.Correct) / float64(stat.Total) * 100
	}

	return report
}
