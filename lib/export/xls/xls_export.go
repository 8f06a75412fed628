package xlsexport

import (
	"bytes"
	"strings"

	habapimodels "habilitation-backend/models/api/habilitation"
	profileapimodels "habilitation-backend/models/api/profile"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportProfileList(list []profileapimodels.ProfileView) (*bytes.Buffer, error)
	ExportHabilitationList(list []habapimodels.HabilitationView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var profileHeaders = []string{"Matricule", "Nom", "Prénom", "Fonction", "Département", "Email", "Téléphone", "Site", "Type de contrat", "Statut", "Manager"}

func (i impl) ExportProfileList(list []profileapimodels.ProfileView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("Erreur de fermeture du fichier")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, profileHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "erreur d'écriture de l'en-tête xlsx")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(profileHeaders), len(list)+1); err != nil {
			return nil, err
		}
		for _, item := range list {
			row++
			values := []interface{}{
				item.Matricule,
				item.Nom,
				item.Prenom,
				item.Fonction,
				item.Departement,
				item.Email,
				item.Telephone,
				item.Site,
				item.TypeContrat,
				item.Statut.ToHuman(),
				item.ManagerName,
			}
			for col, value := range values {
				if err = writeColumn(f, sheet, col+1, row, value); err != nil {
					return nil, errors.Wrap(err, "erreur d'écriture des données xlsx")
				}
			}
		}
	}
	f.SetSheetName(sheet, "Collaborateurs")
	return f.WriteToBuffer()
}

var habilitationHeaders = []string{"Référence", "Date", "Demandeur", "Bénéficiaire", "Type", "Applications", "Profil demandé", "Statut", "Validé N+1", "Validé N+2", "Contrôle", "Exécuté par"}

// ExportHabilitationList produit le registre des demandes pour les
// contrôles périodiques.
func (i impl) ExportHabilitationList(list []habapimodels.HabilitationView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("Erreur de fermeture du fichier")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, habilitationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "erreur d'écriture de l'en-tête xlsx")
	}
	if len(list) != 0 {
		if err = applyDataCellStyle(f, sheet, 1, row+1, len(habilitationHeaders), len(list)+1); err != nil {
			return nil, err
		}
		for _, item := range list {
			row++
			values := []interface{}{
				item.ID,
				item.CreationDate.Format("02/01/2006"),
				item.RequesterName,
				item.BeneficiaryName,
				string(item.RequestType),
				strings.Join(item.Applications, ", "),
				item.RequestedProfile,
				item.StatusHuman,
				stageCell(item.StageN1),
				stageCell(item.StageN2),
				stageCell(item.StageControl),
				item.ExecutorName,
			}
			for col, value := range values {
				if err = writeColumn(f, sheet, col+1, row, value); err != nil {
					return nil, errors.Wrap(err, "erreur d'écriture des données xlsx")
				}
			}
		}
	}
	f.SetSheetName(sheet, "Habilitations")
	return f.WriteToBuffer()
}

func stageCell(stage habapimodels.StageView) string {
	if stage.ValidatedAt == nil {
		return ""
	}
	return stage.ValidatorName + " le " + stage.ValidatedAt.Format("02/01/2006")
}
