package catalog

import "github.com/courseatlas/backend/internal/types"

var majorsData = []Major{
	{
		Name: "Applied Machine Learning",
		Courses: []types.Course{
			{
				Code:        "CS101",
				Name:        "Probability and Statistics",
				Description: "Introduction to probability theory and statistical methods for data analysis",
				Credits:     3,
				Semester:    "Fall",
				Faculty: types.Faculty{
					Name:        "Dr. Sarah Johnson",
					Email:       "s.johnson@university.edu",
					OfficeHours: "Monday & Wednesday 2-4 PM",
				},
			},
			{
				Code:        "CS102",
				Name:        "Data Visualization using R",
				Description: "Learn to create compelling visualizations using R programming language",
				Credits:     3,
				Semester:    "Spring",
				Faculty: types.Faculty{
					Name:        "Prof. Michael Chen",
					Email:       "m.chen@university.edu",
					OfficeHours: "Tuesday & Thursday 10-12 PM",
				},
			},
			{
				Code:        "CS103",
				Name:        "Model Building with Regression Algorithms",
				Description: "Advanced techniques for building predictive models using various regression methods",
				Credits:     4,
				Semester:    "Fall",
				Faculty: types.Faculty{
					Name:        "Dr. Emily Rodriguez",
					Email:       "e.rodriguez@university.edu",
					OfficeHours: "Friday 1-4 PM",
				},
			},
		},
	},
	{
		Name: "Deep Learning",
		Courses: []types.Course{
			{
				Code:        "CS201",
				Name:        "Neural Network Basics",
				Description: "Fundamentals of neural networks including perceptrons, backpropagation, and optimization",
				Credits:     4,
				Semester:    "Fall",
				Faculty: types.Faculty{
					Name:        "Prof. David Kim",
					Email:       "d.kim@university.edu",
					OfficeHours: "Monday & Friday 9-11 AM",
				},
			},
			{
				Code:        "CS202",
				Name:        "Transformers and Attention",
				Description: "Modern transformer architectures and attention mechanisms for NLP and computer vision",
				Credits:     4,
				Semester:    "Spring",
				Faculty: types.Faculty{
					Name:        "Dr. Lisa Wang",
					Email:       "l.wang@university.edu",
					OfficeHours: "Wednesday 2-5 PM",
				},
			},
			{
				Code:        "CS203",
				Name:        "Generative AI with Python",
				Description: "Hands-on experience with generative models including GANs, VAEs, and large language models",
				Credits:     3,
				Semester:    "Summer",
				Faculty: types.Faculty{
					Name:        "Prof. Alex Thompson",
					Email:       "a.thompson@university.edu",
					OfficeHours: "Tuesday & Thursday 1-3 PM",
				},
			},
		},
	},
	{
		Name: "Data Science",
		Courses: []types.Course{
			{
				Code:        "CS301",
				Name:        "Data Mining",
				Description: "Techniques for discovering patterns in large datasets using clustering, classification, and association rules",
				Credits:     3,
				Semester:    "Fall",
				Faculty: types.Faculty{
					Name:        "Dr. Rachel Green",
					Email:       "r.green@university.edu",
					OfficeHours: "Monday & Wednesday 11 AM-1 PM",
				},
			},
			{
				Code:        "CS302",
				Name:        "Hypothesis Testing using t-test",
				Description: "Statistical hypothesis testing methods with focus on t-tests and their applications",
				Credits:     2,
				Semester:    "Spring",
				Faculty: types.Faculty{
					Name:        "Prof. James Miller",
					Email:       "j.miller@university.edu",
					OfficeHours: "Thursday 3-6 PM",
				},
			},
			{
				Code:        "CS303",
				Name:        "Feature Engineering with R",
				Description: "Advanced feature selection and engineering techniques using R for machine learning projects",
				Credits:     3,
				Semester:    "Fall",
				Faculty: types.Faculty{
					Name:        "Dr. Maria Garcia",
					Email:       "m.garcia@university.edu",
					OfficeHours: "Tuesday & Friday 10 AM-12 PM",
				},
			},
		},
	},
}
