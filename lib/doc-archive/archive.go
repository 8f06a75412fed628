package docarchive

// Archivage des fiches d'habilitation signées dans le stockage objet.
// Une fiche archivée fait foi en cas d'audit: la clé reprend l'identifiant
// de la demande et le contenu n'est jamais réécrit après clôture.

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"habilitation-backend/config"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

var Instance Provider

type Provider interface {
	ArchiveSheet(ctx context.Context, habID string, pdfFile []byte) error
	GetSheet(ctx context.Context, habID string) ([]byte, error)
}

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) objectName(habID string) string {
	return fmt.Sprintf("habilitations/%s.pdf", habID)
}

func (i impl) ArchiveSheet(ctx context.Context, habID string, pdfFile []byte) error {
	reader := bytes.NewReader(pdfFile)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, i.objectName(habID),
		reader, int64(len(pdfFile)),
		minio.PutObjectOptions{ContentType: "application/pdf"})
	if err != nil {
		return errors.Wrap(err, "erreur d'archivage de la fiche")
	}
	return nil
}

func (i impl) GetSheet(ctx context.Context, habID string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, i.objectName(habID), minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "erreur de lecture de la fiche archivée")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "erreur de lecture de la fiche archivée")
	}
	return body, nil
}
