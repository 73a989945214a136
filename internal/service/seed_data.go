package service

import "olympus_backend/internal/model"

func intPtr(v int) *int { return &v }

// SampleQuestions returns the built-in olympiad problem set.
func SampleQuestions() []QuestionInput {
	return []QuestionInput{
		{
			Title:            "BdMO 2023 Regional - Problem 1",
			ProblemStatement: "Find all positive integers n such that n² + 19n + 23 is a perfect square.",
			Solution:         "Let n² + 19n + 23 = k² for some integer k. Rearranging: 4n² + 76n + 92 = 4k². Complete the square: (2n + 19)² - 269 = 4k². This is a Pell equation. Solutions: n = 1, n = 18.",
			Difficulty:       "medium",
			Topic:            "number_theory",
			Source:           "BdMO",
			Year:             intPtr(2023),
			ProblemNumber:    "Regional P1",
		},
		{
			Title:            "BdMO 2022 National - Problem 3",
			ProblemStatement: "In triangle ABC, AB = AC. Point D lies on BC such that BD = 2DC. Prove that 2∠BAD = ∠CAD if and only if BC = 2AB.",
			Solution:         "Use angle bisector theorem and trigonometry. Let ∠BAC = 2α and BC = a, AB = AC = b. By angle bisector theorem and given conditions, we get the relation a = 2b.",
			Difficulty:       "hard",
			Topic:            "geometry",
			Source:           "BdMO",
			Year:             intPtr(2022),
			ProblemNumber:    "National P3",
		},
		{
			Title:            "BdMO 2023 Regional - Problem 5",
			ProblemStatement: "How many 5-digit numbers exist where each digit is either 1 or 2, and no two consecutive digits are the same?",
			Solution:         "The first digit has 2 choices and every later digit is forced to differ from the one before it, so there are exactly 2 such numbers: 12121 and 21212.",
			Difficulty:       "easy",
			Topic:            "combinatorics",
			Source:           "BdMO",
			Year:             intPtr(2023),
			ProblemNumber:    "Regional P5",
		},
		{
			Title:            "IMO 1988 Problem 6",
			ProblemStatement: "Let a and b be positive integers such that ab + 1 divides a² + b². Prove that (a² + b²)/(ab + 1) is a perfect square.",
			Solution:         "Classic Vieta jumping problem. Let k = (a² + b²)/(ab + 1). Assume k is not a perfect square and derive contradiction using descent.",
			Difficulty:       "hard",
			Topic:            "number_theory",
			Source:           "IMO",
			Year:             intPtr(1988),
			ProblemNumber:    "P6",
		},
		{
			Title:            "AIME 2020 Problem 7",
			ProblemStatement: "Find the number of positive integers n ≤ 1000 for which there exists a positive real number x such that x² + (nx + 1)² is an integer.",
			Solution:         "Let x² + (nx + 1)² = m for integer m. Expanding: (n² + 1)x² + 2nx + 1 = m. For real x, discriminant ≥ 0: 4n² - 4(n² + 1)(1 - m) ≥ 0. Solve for n.",
			Difficulty:       "medium",
			Topic:            "algebra",
			Source:           "AIME",
			Year:             intPtr(2020),
			ProblemNumber:    "P7",
		},
	}
}

func sampleCourses() []CourseInput {
	return []CourseInput{
		{
			Title:          "উচ্চতর বীজগণিত (Advanced Algebra)",
			Description:    "অলিম্পিয়াডের জন্য এডভান্স বীজগণিত - সমীকরণ, অসমতা, ফাংশন, এবং পলিনোমিয়াল",
			InstructorName: "ড. রহিম আহমেদ (IMO 2018 স্বর্ণপদক)",
			DurationHours:  24,
			LessonCount:    18,
			Difficulty:     model.Advanced,
		},
		{
			Title:          "জ্যামিতির মূলনীতি (Geometry Fundamentals)",
			Description:    "ইউক্লিডীয় জ্যামিতি থেকে আধুনিক জ্যামিতি - ত্রিভুজ, বৃত্ত, বহুভুজ",
			InstructorName: "প্রফেসর করিম হোসেন (জাতীয় পদকপ্রাপ্ত)",
			DurationHours:  20,
			LessonCount:    15,
			Difficulty:     model.Intermediate,
		},
		{
			Title:          "সংখ্যাতত্ত্ব (Number Theory)",
			Description:    "ডিভিসিবিলিটি, প্রাইম নাম্বার, মডুলার অ্যারিথমেটিক, ডায়োফ্যান্টাইন সমীকরণ",
			InstructorName: "তানভীর হাসান (BdMO 2020 চ্যাম্পিয়ন)",
			DurationHours:  18,
			LessonCount:    12,
			Difficulty:     model.Advanced,
		},
		{
			Title:          "কম্বিনেটরিক্স (Combinatorics)",
			Description:    "পারমুটেশন, কম্বিনেশন, গ্রাফ থিওরি, পিজিয়নহোল প্রিন্সিপাল",
			InstructorName: "সাদিয়া ইসলাম (AIME কোয়ালিফায়ার)",
			DurationHours:  16,
			LessonCount:    10,
			Difficulty:     model.Intermediate,
		},
	}
}

// CurrentCourses is the catalog installed by a content refresh.
func CurrentCourses() []CourseInput {
	return []CourseInput{
		{
			Title: "Primary Problem-Solving Foundations",
			Description: "A 3-month foundation program that builds logical, systematic mathematical thinking in young learners. " +
				"Three 60 minute live classes a week for Class 3-5 students, weekly short tests, monthly evaluations " +
				"and a final certificate examination in month 3.",
			InstructorName: "Olympiad-Experienced Mentors",
			DurationHours:  72,
			LessonCount:    36,
			Difficulty:     model.Beginner,
			Category:       "foundation",
			ImageURL:       "🎯",
		},
		{
			Title: "Intermediate Problem Understanding",
			Description: "Coming soon. An intermediate program on deeper mathematical concepts and advanced " +
				"problem-solving techniques for students who have completed the foundation course.",
			InstructorName: "Expert Math Educators",
			DurationHours:  96,
			LessonCount:    48,
			Difficulty:     model.Intermediate,
			Category:       "intermediate",
			ImageURL:       "📊",
		},
		{
			Title: "Advanced Math Accelerator",
			Description: "Coming soon. Elite-level training for students targeting national and international " +
				"olympiads, focused on competition problem-solving and mathematical creativity.",
			InstructorName: "National Olympiad Champions",
			DurationHours:  120,
			LessonCount:    60,
			Difficulty:     model.Advanced,
			Category:       "olympiad",
			ImageURL:       "🏆",
		},
	}
}
