package pdfexport

// Génération de la fiche d'habilitation au format PDF. Le document reprend
// la structure du formulaire papier: identification, droits demandés,
// puis le cartouche des validations successives.

import (
	"bytes"
	"fmt"
	"time"

	habapimodels "habilitation-backend/models/api/habilitation"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	labelWidth = 60
	lineHeight = 7
)

func GenerateHabilitationSheet(view habapimodels.HabilitationView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateHabilitationSheet panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, tr("Fiche de demande d'habilitation"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Référence: %s", view.ID)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Statut: %s", view.StatusHuman)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section(pdf, tr, "Identification")
	field(pdf, tr, "Demandeur", view.RequesterName)
	field(pdf, tr, "Direction du demandeur", view.RequesterDirection)
	field(pdf, tr, "Bénéficiaire", view.BeneficiaryName)
	field(pdf, tr, "Site du bénéficiaire", view.BeneficiarySite)
	field(pdf, tr, "Filiale", view.Subsidiary)
	pdf.Ln(2)

	section(pdf, tr, "Droits demandés")
	field(pdf, tr, "Type de demande", string(view.RequestType))
	applications := ""
	for idx, app := range view.Applications {
		if idx > 0 {
			applications += ", "
		}
		applications += app
	}
	if view.OtherApplication != "" {
		if applications != "" {
			applications += ", "
		}
		applications += view.OtherApplication
	}
	field(pdf, tr, "Applications", applications)
	field(pdf, tr, "Profil actuel", view.CurrentProfile)
	field(pdf, tr, "Profil demandé", view.RequestedProfile)
	field(pdf, tr, "Type de profil", string(view.ProfileType))
	if view.SpecificProfile != "" {
		field(pdf, tr, "Profil spécifique", view.SpecificProfile)
	}
	field(pdf, tr, "Période de validité", string(view.ValidityPeriod))
	if view.StartDate != nil && view.EndDate != nil {
		field(pdf, tr, "Du / au", fmt.Sprintf("%s / %s", formatDate(view.StartDate), formatDate(view.EndDate)))
	}
	field(pdf, tr, "Motif", view.RequestReason)
	pdf.Ln(2)

	section(pdf, tr, "Circuit de validation")
	stage(pdf, tr, "Validation N+1", view.StageN1)
	stage(pdf, tr, "Validation N+2", view.StageN2)
	stage(pdf, tr, "Contrôle Permanent", view.StageControl)
	if view.ExecutorName != "" || view.ExecutedAt != nil {
		field(pdf, tr, "Exécuté par", view.ExecutorName)
		field(pdf, tr, "Exécuté le", formatDate(view.ExecutedAt))
		if view.CommentIT != "" {
			field(pdf, tr, "Commentaire IT", view.CommentIT)
		}
	}

	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 8, tr(title), "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

func field(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelWidth, lineHeight, tr(label), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, lineHeight, tr(value), "", "L", false)
}

func stage(pdf *fpdf.Fpdf, tr func(string) string, title string, view habapimodels.StageView) {
	value := "en attente"
	if view.ValidatedAt != nil {
		value = fmt.Sprintf("%s, le %s", view.ValidatorName, formatDate(view.ValidatedAt))
		if view.Comment != "" {
			value += fmt.Sprintf(" (%s)", view.Comment)
		}
	}
	field(pdf, tr, title, value)
}

func formatDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format("02/01/2006")
}
