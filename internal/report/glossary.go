package report

// Acronym is one row of the fixed glossary.
type Acronym struct {
	Term       string
	Definition string
}

// Glossary is rendered verbatim, in this order, in every export.
var Glossary = []Acronym{
	{"AC", "Audit Committee"},
	{"ALCO", "Asset and Liability Committee"},
	{"ALM", "Asset-Liability Management"},
	{"AML", "Anti-Money Laundering"},
	{"AP", "Associated Person"},
	{"ARA", "Actual Risk Assessment"},
	{"B2C", "Business-to-Consumer"},
	{"BAU", "Business-as-Usual"},
	{"BBS", "Branch Banking Services"},
	{"BOD", "Board of Directors"},
	{"BSP", "Bangko Sentral ng Pilipinas"},
	{"BT", "Bancassurance"},
	{"CAMEL", "Capital, Assets, Management, Earnings, Liquidity"},
	{"CASA", "Current and Savings Account"},
	{"CBS", "Core Banking System"},
	{"CDD", "Customer Due Diligence"},
	{"CEO", "Chief Executive Officer"},
	{"CET", "Common Equity Tier"},
	{"CFO", "Chief Financial Officer"},
	{"CIMFS", "Customer Incident Management and Feedback System"},
	{"CLO", "Chief Lending Officer"},
	{"CMDI", "Capital Market Development Initiatives"},
	{"COPC", "Certified Unit Selling Personnel"},
	{"CORACTS", "Guidelines on Transaction Reporting and Compliance"},
	{"CRO", "Chief Risk Officer"},
	{"CTF", "Counter-Terrorism Financing"},
	{"DCF", "Discounted Cash Flow"},
	{"DOT", "Declaration of Trust"},
	{"DST", "Documentary Stamp Tax"},
	{"EaR", "Earnings at Risk"},
	{"ECAI", "External Credit Assessment Institution"},
	{"ECL", "Expected Credit Loss"},
	{"ECOMM", "E-Commerce"},
	{"ERM", "Enterprise Risk Management"},
	{"FMS", "Financial Markets Sector"},
	{"FOE", "Foreign-Owned Entity"},
	{"FSS", "Financial Supervision Sector"},
	{"FVOCI", "Fair Value through Other Comprehensive Income"},
	{"FVPL", "Fair Value through Profit or Loss"},
	{"GCG", "Good Corporate Governance"},
	{"HO", "Head Office"},
	{"HRMG", "Human Resource Management Group"},
	{"IAS", "International Accounting Standards"},
	{"IAASB", "Internal Audit and Regulatory Assessment Process"},
	{"ICAAP", "Internal Capital Adequacy Assessment Process"},
	{"IFRS", "International Financial Reporting Standards"},
	{"IMA", "Investment Management Account"},
	{"IRRBB", "Interest Rate Risk in the Banking Book"},
	{"KRI", "Key Risk Indicator"},
	{"LCR", "Liquidity Coverage Ratio"},
	{"LGD", "Loss Given Default"},
	{"LTV", "Loan-to-Value"},
	{"MIS", "Management Information System"},
	{"MORB", "Manual of Regulations for Banks"},
	{"MORNBFI", "Manual of Regulations for Non-Bank Financial Institutions"},
	{"NII", "Net Interest Income"},
	{"NIM", "Net Interest Margin"},
	{"NPL", "Non-Performing Loan"},
	{"NSFR", "Net Stable Funding Ratio"},
	{"ORM", "Operational Risk Management"},
	{"PD", "Probability of Default"},
	{"PFRS", "Philippine Financial Reporting Standards"},
	{"RA", "Risk Assessment"},
	{"RCSA", "Risk and Control Self-Assessment"},
	{"ROA", "Return on Assets"},
	{"ROE", "Return on Equity"},
	{"RP", "Risk Profile"},
	{"RPT", "Related Party Transaction"},
	{"RWA", "Risk-Weighted Assets"},
	{"SME", "Small and Medium Enterprise"},
	{"TBA", "Treasury Bills Auction"},
	{"VaR", "Value at Risk"},
	{"BSFI", "BSP-Supervised Financial Institution"},
	{"CAR", "Capital Adequacy Ratio"},
	{"KYC", "Know Your Customer"},
	{"STR", "Suspicious Transaction Report"},
}
