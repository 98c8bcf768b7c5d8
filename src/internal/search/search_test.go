package search

import (
	"testing"

	"donation-service/src/pkg/log"

	"github.com/stretchr/testify/require"
)

func Test_Index(t *testing.T) {
	index := NewIndex(log.Discard())
	defer index.Close()

	require.NoError(t, index.Index(RewardDoc, "rw-1", "Insignia Amigo Solidario", RewardData{Title: "Insignia Amigo Solidario", Type: "Badge"}))
	require.NoError(t, index.Index(RewardDoc, "rw-2", "Certificado de Donante", RewardData{Title: "Certificado de Donante", Description: "Certificado anual"}))
	require.NoError(t, index.Index(EmergencyDoc, "em-1", "Sequía en el Norte", EmergencyData{Title: "Sequía en el Norte"}))

	hits, err := index.Search(RewardDoc, "certificado", 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "rw-2", hits[0].ID)
	require.Equal(t, "Certificado de Donante", hits[0].Title)
	require.Greater(t, hits[0].Score, 0.0)

	// kinds are indexed separately
	hits, err = index.Search(EmergencyDoc, "certificado", 0)
	require.NoError(t, err)
	require.Empty(t, hits)

	// reindexing replaces the previous document
	require.NoError(t, index.Index(RewardDoc, "rw-2", "Diploma", RewardData{Title: "Diploma"}))
	hits, err = index.Search(RewardDoc, "certificado", 0)
	require.NoError(t, err)
	require.Empty(t, hits)

	require.NoError(t, index.Delete(RewardDoc, "rw-1"))
	hits, err = index.Search(RewardDoc, "insignia", 0)
	require.NoError(t, err)
	require.Empty(t, hits)
}
