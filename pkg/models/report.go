package models

// Canonical report names as they travel on the wire. The pipeline's final
// nodes publish report bodies into the derived variables under these exact
// names, and terminal updates carry them as the keys of the reports mapping.
const (
	ReportNameAdapted      = "Adapted Report"
	ReportNameProfessional = "Professional Report"
	ReportNameScoreProfile = "Aggregate Score Profile"
)

// CanonicalReportNames lists the three deliverable names in delivery order.
var CanonicalReportNames = []string{
	ReportNameAdapted,
	ReportNameProfessional,
	ReportNameScoreProfile,
}

// ReportSet maps canonical report names to rendered content.
type ReportSet map[string]string

// ExtractReports pulls the canonical report bodies out of a derived variables
// map. Missing names are simply absent from the result.
func ExtractReports(variables map[string]string) ReportSet {
	reports := make(ReportSet)
	for _, name := range CanonicalReportNames {
		if content, ok := variables[name]; ok && content != "" {
			reports[name] = content
		}
	}
	return reports
}
