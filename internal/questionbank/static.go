package questionbank

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Banks is the nested lookup table: interview type -> role -> domain -> questions.
type Banks map[string]map[string]map[string][]string

// StaticProvider serves questions from an in-memory bank built once at
// startup and never mutated afterwards.
type StaticProvider struct {
	banks Banks
}

func NewStaticProvider() *StaticProvider {
	banks := defaultBanks()
	fillGeneral(banks)
	return &StaticProvider{banks: banks}
}

// NewStaticProviderFromFile loads the bank from a YAML file instead of the
// built-in table. The file holds the same nested shape as Banks.
func NewStaticProviderFromFile(path string) (*StaticProvider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var banks Banks
	if err := yaml.Unmarshal(raw, &banks); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if len(banks) == 0 {
		return nil, fmt.Errorf("question bank %s is empty", path)
	}

	fillGeneral(banks)
	return &StaticProvider{banks: banks}, nil
}

// fillGeneral gives every role a "general" domain so domain lookups always
// have somewhere to land.
func fillGeneral(banks Banks) {
	for interviewType, roles := range banks {
		for role, domains := range roles {
			if _, ok := domains["general"]; !ok {
				domains["general"] = Fallback(interviewType, role)
			}
		}
	}
}

func (p *StaticProvider) Questions(_ context.Context, role, domain, interviewType string, count int) []string {
	roles, ok := p.banks[interviewType]
	if !ok {
		return Sample(Fallback(interviewType, role), count)
	}
	domains, ok := roles[role]
	if !ok {
		return Sample(Fallback(interviewType, role), count)
	}
	list, ok := domains[domain]
	if !ok {
		list = domains["general"]
	}
	return Sample(list, count)
}

func defaultBanks() Banks {
	return Banks{
		"technical": {
			"Software Engineer": {
				"frontend": {
					"Explain the difference between local storage and session storage in browsers.",
					"What is the virtual DOM in React and why is it beneficial?",
					"How would you optimize website loading performance?",
					"Explain the concept of CSS BEM methodology.",
					"How does the JavaScript event loop work?",
				},
				"backend": {
					"Explain RESTful API design principles.",
					"How would you handle database migrations in a production environment?",
					"Compare SQL and NoSQL databases and when to use each.",
					"How would you implement authentication and authorization in a web application?",
					"Explain the concept of microservices architecture.",
				},
				"general": {
					"Explain the concept of time complexity and give examples.",
					"How would you approach debugging a complex issue in production?",
					"Explain the principle of SOLID in object-oriented programming.",
					"What strategies do you use for testing your code?",
					"How do you stay current with new technologies in your field?",
				},
			},
			"Data Scientist": {
				"machine learning": {
					"Explain the difference between supervised and unsupervised learning.",
					"How would you handle imbalanced data in a classification problem?",
					"Explain the concept of overfitting and how to prevent it.",
					"How would you evaluate a regression model?",
					"Explain the concept of feature engineering.",
				},
				"general": {
					"Describe a data cleaning process you've used in the past.",
					"How would you explain a complex algorithm to a non-technical stakeholder?",
					"What steps would you take to handle missing data?",
					"Explain the concept of A/B testing.",
					"How do you approach data visualization?",
				},
			},
		},
		"behavioral": {
			"Software Engineer": {
				"general": {
					"Tell me about a time you had to learn a new technology quickly for a project.",
					"Describe a situation where you had to resolve a conflict in a team.",
					"Tell me about a project you're particularly proud of and your contribution.",
					"How do you handle tight deadlines and pressure?",
					"Describe a time when you had to make a difficult technical decision.",
				},
			},
			"Data Scientist": {
				"general": {
					"Tell me about a data analysis project that had a significant impact on the business.",
					"Describe a situation where your analysis led to an unexpected insight.",
					"How do you communicate technical findings to non-technical stakeholders?",
					"Tell me about a time when you had to adjust your analysis based on feedback.",
					"Describe a situation where you had to work with incomplete or messy data.",
				},
			},
			"Product Manager": {
				"general": {
					"Tell me about a time when you had to prioritize features for a product.",
					"Describe a situation where you had to make a decision based on limited data.",
					"How do you handle stakeholder disagreements?",
					"Tell me about a product launch that didn't go as planned and what you learned.",
					"How do you gather and incorporate user feedback into product development?",
				},
			},
		},
	}
}
