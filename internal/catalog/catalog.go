package catalog

import "github.com/idilsaglam/entraops/internal/model"

// builtin is the shipped checklist. Item ids must stay unique across
// categories; catalog_test.go checks that.
var builtin = model.Catalog{
	{
		ID:          "emergency",
		Title:       "Emergency Access",
		Description: "Ensure you have backup access methods to prevent lockout.",
		Icon:        "AlertTriangle",
		Items: []model.Item{
			{
				ID:             "break-glass",
				Text:           "Create 2 emergency access accounts (Break-glass)",
				Description:    "Exempt from MFA and Conditional Access policies to prevent lockout during service outages.",
				Recommendation: "To prevent lockout if MFA/SSO fails.",
				ActionRequired: true,
			},
		},
	},
	{
		ID:          "privileged",
		Title:       "Privileged Access",
		Description: "Secure your highest privilege accounts.",
		Icon:        "ShieldAlert",
		Items: []model.Item{
			{
				ID:             "global-admins",
				Text:           "Limit Global Admins to < 5 users",
				Description:    "Global Admin role is the highest privilege. Keep the number low to reduce attack surface.",
				Recommendation: "Reduce attack surface for the highest privilege.",
				ActionRequired: true,
			},
			{
				ID:             "pim",
				Text:           "Use PIM for all administrative roles",
				Description:    "Enable Privileged Identity Management (PIM) to enforce Just-in-Time access.",
				Recommendation: `Implement "Just-in-Time" access principle.`,
				ActionRequired: true,
			},
		},
	},
	{
		ID:          "monitoring",
		Title:       "Monitoring & Logging",
		Description: "Visibility into your identity infrastructure.",
		Icon:        "Activity",
		Items: []model.Item{
			{
				ID:             "log-analytics",
				Text:           "Connect Entra ID Logs to Log Analytics",
				Description:    "Stream sign-in and audit logs to Azure Monitor or a SIEM.",
				Recommendation: "For long-term auditing and threat hunting.",
				ActionRequired: true,
			},
		},
	},
	{
		ID:          "operations",
		Title:       "Operational Health",
		Description: "Maintain hygiene of your identity objects.",
		Icon:        "Settings",
		Items: []model.Item{
			{
				ID:             "service-principals",
				Text:           "Review Service Principal credentials",
				Description:    "Scan for expired secrets and unused applications.",
				Recommendation: "Prevent use of expired or overly-permissive keys.",
				ActionRequired: true,
			},
		},
	},
}

// Default returns a copy of the built-in catalog.
func Default() model.Catalog {
	return builtin.Clone()
}
