package initializers

import (
	"context"

	docarchive "habilitation-backend/lib/doc-archive"
	s3client "habilitation-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Erreur d'initialisation du client S3")
		return
	}

	// Vérification de la connexion
	if _, err = minioClient.ListBuckets(context.Background()); err != nil {
		log.WithError(err).Error("Connexion S3 impossible, ListBuckets a échoué")
	}

	if err = s3client.MakeBucket(context.Background(), minioClient); err != nil {
		log.WithError(err).Error("Erreur de création du bucket d'archivage")
	}

	s3client.Client = minioClient
	docarchive.NewInstance(minioClient)
	log.Info("Client S3 initialisé")
}
