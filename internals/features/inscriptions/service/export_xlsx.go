package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// --- ENUM export_mode --------------------------------------------------------
type ExportMode string

const (
	ExportModeCompact ExportMode = "compact"
	ExportModeFull    ExportMode = "full"
	ExportModeList    ExportMode = "list"
)

const sheetName = "Inscripcions"

// BuildWorkbook renders export rows into an xlsx workbook.
// Compact: activity, course, name, surname, membership, phone.
// Full: adds identifier, date, guardian identity and health/authorization.
func BuildWorkbook(rows []ExportRow, mode ExportMode) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	headers := compactHeaders
	if mode == ExportModeFull {
		headers = fullHeaders
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		vals := compactValues(r)
		if mode == ExportModeFull {
			vals = fullValues(r)
		}
		if err := f.SetSheetRow(sheetName, cell, &vals); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

var compactHeaders = []interface{}{
	"Activitat", "Curs", "Nom", "Cognoms", "Soci AFA", "Telèfon",
}

var fullHeaders = []interface{}{
	"ID", "Data", "Activitat", "Curs", "Nom", "Cognoms",
	"Tutor/a", "DNI tutor/a", "Telèfon", "Email",
	"Soci AFA", "Salut", "Aut. imatge", "Estat",
}

func compactValues(r ExportRow) []interface{} {
	return []interface{}{
		r.exportActivity(), r.Course, r.Name, r.Surname, yesNo(r.AFAMember), r.ParentPhone,
	}
}

func fullValues(r ExportRow) []interface{} {
	return []interface{}{
		r.InscriptionID.String(),
		r.CreatedAt.Format("2006-01-02"),
		r.exportActivity(),
		r.Course,
		r.Name,
		r.Surname,
		r.GuardianName,
		r.GuardianDNI,
		r.ParentPhone,
		r.ParentEmail,
		yesNo(r.AFAMember),
		r.HealthNotes,
		yesNo(r.ImageAuthorized),
		string(r.Status),
	}
}

// exportActivity returns whichever activity representation the shaping mode
// filled in.
func (r ExportRow) exportActivity() string {
	if r.SingleActivity != "" {
		return r.SingleActivity
	}
	return r.ActivitiesJoined
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
