package catalog

import "rightsteps/internal/models"

// defaultCourses is the built-in marketplace course list.
var defaultCourses = []models.Course{
	{
		ID: 1, Name: "Complete Mathematics Mastery", Category: "Mathematics", Grade: "Year 8",
		Difficulty: models.DifficultyBeginner, Price: 29.99, Rating: 4.8, Reviews: 234, Duration: "15.5 hours", Lessons: 25,
		Provider: "rightsteps", ProviderName: "Rightsteps", Instructor: "Dr. Sarah Mitchell",
		Description: "Master essential mathematics concepts with interactive lessons and real-world applications.",
		Badges:      []string{"trending", "popular"},
		Enrollments: 1245, CompletionRate: 94,
		LearningPoints: []string{"Algebra fundamentals", "Geometry principles", "Problem-solving strategies"},
	},
	{
		ID: 2, Name: "Science Fundamentals", Category: "Science", Grade: "Year 8",
		Difficulty: models.DifficultyBeginner, Price: 34.99, Rating: 4.9, Reviews: 189, Duration: "22 hours", Lessons: 30,
		Provider: "rightsteps", ProviderName: "Rightsteps", Instructor: "Prof. James Chen",
		Description: "Comprehensive science course covering biology, chemistry, and physics concepts.",
		Badges:      []string{"most-loved", "bestseller"},
		Enrollments: 987, CompletionRate: 98,
		LearningPoints: []string{"Scientific method", "Lab techniques", "Critical thinking"},
	},
	{
		ID: 3, Name: "English Language Excellence", Category: "English", Grade: "Year 8",
		Difficulty: models.DifficultyBeginner, Price: 24.99, Rating: 4.7, Reviews: 156, Duration: "12 hours", Lessons: 20,
		Provider: "external", ProviderName: "Learn Plus Academy", Instructor: "Emma Thompson",
		Description: "Improve reading comprehension, writing skills, and grammar mastery.",
		Badges:      []string{"new"},
		Enrollments: 432, CompletionRate: 87,
		LearningPoints: []string{"Grammar rules", "Essay writing", "Literature analysis"},
	},
	{
		ID: 4, Name: "Advanced Mathematics", Category: "Mathematics", Grade: "Year 9",
		Difficulty: models.DifficultyIntermediate, Price: 32.99, Rating: 4.8, Reviews: 201, Duration: "18 hours", Lessons: 28,
		Provider: "rightsteps", ProviderName: "Rightsteps", Instructor: "Dr. Sarah Mitchell",
		Description: "Build on foundational maths with advanced topics and complex problem solving.",
		Badges:      []string{"popular"},
		Enrollments: 756, CompletionRate: 91,
		LearningPoints: []string{"Advanced algebra", "Trigonometry basics", "Functions and graphs"},
	},
	{
		ID: 5, Name: "GCSE Physics Preparation", Category: "Science", Grade: "Year 10",
		Difficulty: models.DifficultyAdvanced, Price: 39.99, Rating: 4.9, Reviews: 167, Duration: "25 hours", Lessons: 22,
		Provider: "external", ProviderName: "Physics Masters", Instructor: "Dr. Michael Brown",
		Description: "Complete GCSE physics preparation with exam techniques and practice questions.",
		Badges:      []string{"most-loved"},
		Enrollments: 623, CompletionRate: 89,
		LearningPoints: []string{"Forces and motion", "Energy transfers", "Electricity and magnetism"},
	},
	{
		ID: 6, Name: "Chemistry Essentials", Category: "Science", Grade: "Year 10",
		Difficulty: models.DifficultyIntermediate, Price: 37.99, Rating: 4.6, Reviews: 143, Duration: "20 hours", Lessons: 24,
		Provider: "external", ProviderName: "ChemWiz Education", Instructor: "Dr. Lisa Wang",
		Description: "Explore chemical reactions, atomic structure, and the periodic table.",
		Badges:      []string{},
		Enrollments: 289, CompletionRate: 82,
		LearningPoints: []string{"Chemical bonding", "Reactions", "Practical skills"},
	},
	{
		ID: 7, Name: "Introduction to Algebra", Category: "Mathematics", Grade: "Year 7",
		Difficulty: models.DifficultyBeginner, Price: 19.99, Rating: 4.5, Reviews: 98, Duration: "9 hours", Lessons: 18,
		Provider: "rightsteps", ProviderName: "Rightsteps", Instructor: "Dr. Sarah Mitchell",
		Description: "Build a strong foundation in algebra for young learners.",
		Badges:      []string{"new"},
		Enrollments: 234, CompletionRate: 88,
		LearningPoints: []string{"Basic equations", "Variables", "Simple expressions"},
	},
	{
		ID: 8, Name: "Biology for GCSE", Category: "Science", Grade: "Year 11",
		Difficulty: models.DifficultyAdvanced, Price: 44.99, Rating: 4.9, Reviews: 312, Duration: "28 hours", Lessons: 35,
		Provider: "rightsteps", ProviderName: "Rightsteps", Instructor: "Prof. James Chen",
		Description: "Complete GCSE Biology preparation with detailed explanations and exam practice.",
		Badges:      []string{"bestseller", "trending"},
		Enrollments: 1567, CompletionRate: 96,
		LearningPoints: []string{"Cell biology", "Genetics", "Evolution", "Ecology"},
	},
	{
		ID: 9, Name: "Creative Writing Workshop", Category: "English", Grade: "Year 9",
		Difficulty: models.DifficultyIntermediate, Price: 27.99, Rating: 4.7, Reviews: 87, Duration: "8 hours", Lessons: 15,
		Provider: "external", ProviderName: "Write Bright", Instructor: "Sophie Turner",
		Description: "Develop creative writing skills through engaging exercises and feedback.",
		Badges:      []string{"popular"},
		Enrollments: 345, CompletionRate: 85,
		LearningPoints: []string{"Storytelling", "Character development", "Descriptive writing"},
	},
	{
		ID: 10, Name: "GCSE Mathematics Higher", Category: "Mathematics", Grade: "Year 11",
		Difficulty: models.DifficultyAdvanced, Price: 49.99, Rating: 4.9, Reviews: 445, Duration: "35 hours", Lessons: 40,
		Provider: "rightsteps", ProviderName: "Rightsteps", Instructor: "Dr. Sarah Mitchell",
		Description: "Complete higher tier GCSE maths course with comprehensive exam preparation.",
		Badges:      []string{"bestseller", "most-loved"},
		Enrollments: 2134, CompletionRate: 97,
		LearningPoints: []string{"Advanced algebra", "Calculus introduction", "Statistics", "Trigonometry"},
	},
	{
		ID: 11, Name: "Shakespeare Studies", Category: "English", Grade: "Year 10",
		Difficulty: models.DifficultyIntermediate, Price: 22.99, Rating: 4.6, Reviews: 76, Duration: "6 hours", Lessons: 12,
		Provider: "external", ProviderName: "Classic Literature Hub", Instructor: "Michael Robertson",
		Description: "Deep dive into Shakespeare's works with analysis and interpretation.",
		Badges:      []string{},
		Enrollments: 198, CompletionRate: 79,
		LearningPoints: []string{"Literary analysis", "Historical context", "Language techniques"},
	},
	{
		ID: 12, Name: "Computer Science Basics", Category: "Computer Science", Grade: "Year 8",
		Difficulty: models.DifficultyBeginner, Price: 31.99, Rating: 4.8, Reviews: 167, Duration: "14 hours", Lessons: 22,
		Provider: "rightsteps", ProviderName: "Rightsteps", Instructor: "Dr. Alex Kumar",
		Description: "Introduction to programming and computational thinking.",
		Badges:      []string{"trending"},
		Enrollments: 678, CompletionRate: 92,
		LearningPoints: []string{"Python basics", "Algorithms", "Problem solving"},
	},
	{
		ID: 13, Name: "French Language Foundation", Category: "Languages", Grade: "Year 7",
		Difficulty: models.DifficultyBeginner, Price: 28.99, Rating: 4.5, Reviews: 112, Duration: "16 hours", Lessons: 26,
		Provider: "external", ProviderName: "Language Masters", Instructor: "Marie Dubois",
		Description: "Learn French from scratch with interactive lessons.",
		Badges:      []string{"new"},
		Enrollments: 289, CompletionRate: 84,
		LearningPoints: []string{"Basic vocabulary", "Grammar", "Pronunciation"},
	},
	{
		ID: 14, Name: "History: World War II", Category: "History", Grade: "Year 9",
		Difficulty: models.DifficultyIntermediate, Price: 26.99, Rating: 4.7, Reviews: 134, Duration: "11 hours", Lessons: 18,
		Provider: "external", ProviderName: "History Academy", Instructor: "Prof. David Williams",
		Description: "Comprehensive study of World War II events and impacts.",
		Badges:      []string{"popular"},
		Enrollments: 456, CompletionRate: 88,
		LearningPoints: []string{"Key events", "Political analysis", "Source evaluation"},
	},
	{
		ID: 15, Name: "A-Level Chemistry", Category: "Science", Grade: "Year 12",
		Difficulty: models.DifficultyAdvanced, Price: 54.99, Rating: 4.9, Reviews: 267, Duration: "38 hours", Lessons: 45,
		Provider: "rightsteps", ProviderName: "Rightsteps", Instructor: "Dr. Lisa Wang",
		Description: "Complete A-Level Chemistry course with practical and theoretical components.",
		Badges:      []string{"bestseller", "most-loved"},
		Enrollments: 1234, CompletionRate: 95,
		LearningPoints: []string{"Organic chemistry", "Physical chemistry", "Analytical techniques"},
	},
	{
		ID: 16, Name: "Spanish for Beginners", Category: "Languages", Grade: "Year 7",
		Difficulty: models.DifficultyBeginner, Price: 26.99, Rating: 4.6, Reviews: 145, Duration: "15 hours", Lessons: 24,
		Provider: "external", ProviderName: "Language Masters", Instructor: "Carlos Martinez",
		Description: "Start your Spanish journey with engaging lessons and practical exercises.",
		Badges:      []string{},
		Enrollments: 356, CompletionRate: 86,
		LearningPoints: []string{"Basic conversation", "Grammar fundamentals", "Cultural insights"},
	},
	{
		ID: 17, Name: "Geography: Physical World", Category: "Geography", Grade: "Year 9",
		Difficulty: models.DifficultyIntermediate, Price: 29.99, Rating: 4.7, Reviews: 102, Duration: "13 hours", Lessons: 20,
		Provider: "external", ProviderName: "Geography Hub", Instructor: "Dr. Rachel Green",
		Description: "Explore Earth's physical features and natural processes.",
		Badges:      []string{"popular"},
		Enrollments: 423, CompletionRate: 87,
		LearningPoints: []string{"Landforms", "Climate", "Ecosystems"},
	},
	{
		ID: 18, Name: "A-Level Mathematics", Category: "Mathematics", Grade: "Year 12",
		Difficulty: models.DifficultyAdvanced, Price: 59.99, Rating: 4.9, Reviews: 389, Duration: "42 hours", Lessons: 48,
		Provider: "rightsteps", ProviderName: "Rightsteps", Instructor: "Dr. Sarah Mitchell",
		Description: "Complete A-Level Mathematics covering pure, mechanics, and statistics.",
		Badges:      []string{"bestseller", "trending"},
		Enrollments: 1876, CompletionRate: 96,
		LearningPoints: []string{"Calculus", "Mechanics", "Statistics", "Pure mathematics"},
	},
}

// defaultTutors is the built-in tutor directory.
var defaultTutors = []models.Tutor{
	{
		ID: 1, Name: "Dr. Emily Thompson", Category: "Mathematics",
		Specialization: []string{"Exam Preparation", "Homework Help"},
		Experience: "8 years", HourlyRate: 25, Rating: 4.9, Reviews: 156,
		Verified: true, Available: true,
		Tagline:   "Mathematics Expert",
		Education: "Ph.D. in Mathematics, University of Cambridge",
		Languages: []string{"English"},
	},
	{
		ID: 2, Name: "Prof. James Richardson", Category: "Science",
		Specialization: []string{"Exam Preparation", "Test Preparation"},
		Experience: "12 years", HourlyRate: 30, Rating: 4.8, Reviews: 203,
		Verified: true, Available: false,
		Tagline:   "Science Specialist",
		Education: "M.Sc. Chemistry, University of Oxford",
		Languages: []string{"English", "French"},
	},
	{
		ID: 3, Name: "Ms. Sarah Collins", Category: "English",
		Specialization: []string{"Homework Help", "Confidence Building"},
		Experience: "6 years", HourlyRate: 22, Rating: 4.7, Reviews: 98,
		Verified: true, Available: true,
		Tagline:   "English Language Expert",
		Education: "M.A. English Literature, King's College London",
		Languages: []string{"English"},
	},
	{
		ID: 4, Name: "Mr. Oliver Davies", Category: "Mathematics",
		Specialization: []string{"General Tutoring", "Exam Preparation"},
		Experience: "5 years", HourlyRate: 28, Rating: 4.9, Reviews: 87,
		Verified: true, Available: true,
		Tagline:   "Maths & Coding Mentor",
		Education: "B.Sc. Computer Science, Imperial College London",
		Languages: []string{"English"},
	},
	{
		ID: 5, Name: "Dr. Amelia Watson", Category: "Science",
		Specialization: []string{"Exam Preparation", "General Tutoring"},
		Experience: "10 years", HourlyRate: 26, Rating: 4.8, Reviews: 178,
		Verified: true, Available: true,
		Tagline:   "Science Specialist",
		Education: "Ph.D. in Biology, University of Edinburgh",
		Languages: []string{"English", "German"},
	},
	{
		ID: 6, Name: "Mr. Benjamin Clarke", Category: "English",
		Specialization: []string{"Confidence Building", "General Tutoring"},
		Experience: "7 years", HourlyRate: 24, Rating: 4.6, Reviews: 134,
		Verified: true, Available: true,
		Tagline:   "English & Literature Expert",
		Education: "M.A. English Literature, University of Manchester",
		Languages: []string{"English"},
	},
	{
		ID: 7, Name: "Ms. Charlotte Brown", Category: "Science",
		Specialization: []string{"Exam Preparation", "Test Preparation"},
		Experience: "4 years", HourlyRate: 27, Rating: 4.9, Reviews: 67,
		Verified: true, Available: true,
		Tagline:   "Physics Specialist",
		Education: "M.Sc. Physics, University of Bristol",
		Languages: []string{"English"},
	},
	{
		ID: 8, Name: "Dr. Daniel Martinez", Category: "Science",
		Specialization: []string{"Exam Preparation", "Homework Help"},
		Experience: "15 years", HourlyRate: 32, Rating: 4.9, Reviews: 289,
		Verified: true, Available: false,
		Tagline:   "Chemistry Expert",
		Education: "Ph.D. in Chemistry, University College London",
		Languages: []string{"English", "Spanish"},
	},
	{
		ID: 9, Name: "Ms. Jessica Lee", Category: "English",
		Specialization: []string{"Confidence Building", "General Tutoring"},
		Experience: "6 years", HourlyRate: 23, Rating: 4.7, Reviews: 112,
		Verified: true, Available: true,
		Tagline:   "Creative English Teacher",
		Education: "M.A. English & Drama, Royal Holloway",
		Languages: []string{"English"},
	},
	{
		ID: 10, Name: "Mr. Thomas Wilson", Category: "Science",
		Specialization: []string{"Test Preparation", "Homework Help"},
		Experience: "9 years", HourlyRate: 29, Rating: 4.8, Reviews: 195,
		Verified: true, Available: true,
		Tagline:   "Biology Expert",
		Education: "M.Sc. Biology, University of Warwick",
		Languages: []string{"English"},
	},
	{
		ID: 11, Name: "Ms. Rachel Green", Category: "Mathematics",
		Specialization: []string{"Homework Help", "Confidence Building"},
		Experience: "3 years", HourlyRate: 20, Rating: 4.5, Reviews: 54,
		Verified: true, Available: true,
		Tagline:   "Maths Made Easy",
		Education: "B.Sc. Mathematics, University of Birmingham",
		Languages: []string{"English"},
	},
	{
		ID: 12, Name: "Dr. Michael Foster", Category: "Mathematics",
		Specialization: []string{"Exam Preparation", "Test Preparation"},
		Experience: "11 years", HourlyRate: 35, Rating: 4.9, Reviews: 234,
		Verified: true, Available: true,
		Tagline:   "Advanced Maths Expert",
		Education: "Ph.D. Mathematics, UCL",
		Languages: []string{"English"},
	},
}
