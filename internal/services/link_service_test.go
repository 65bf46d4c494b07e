package services

import (
	"fmt"
	"testing"

	"slotmanager_backend/internal/models"
	"slotmanager_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLinkRepo struct {
	links []models.ClientOperatorLink
}

func (f *fakeLinkRepo) CreateLink(_ repositories.SQLExecutor, link *models.ClientOperatorLink) error {
	for _, l := range f.links {
		if l.ClientID == link.ClientID && l.OperatorID == link.OperatorID {
			return fmt.Errorf("%w: link pair", repositories.ErrDuplicateKey)
		}
	}
	f.links = append(f.links, *link)
	return nil
}

func (f *fakeLinkRepo) GetLinkByPair(clientID, operatorID string) (*models.ClientOperatorLink, error) {
	for _, l := range f.links {
		if l.ClientID == clientID && l.OperatorID == operatorID {
			link := l
			return &link, nil
		}
	}
	return nil, fmt.Errorf("%w: link pair", repositories.ErrNotFound)
}

func (f *fakeLinkRepo) GetLinks() ([]models.ClientOperatorLink, error) {
	return f.links, nil
}

func (f *fakeLinkRepo) DeleteLink(_ repositories.SQLExecutor, id string) error {
	for i, l := range f.links {
		if l.ID == id {
			f.links = append(f.links[:i], f.links[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: link %s", repositories.ErrNotFound, id)
}

func newTestLinkService(linkRepo *fakeLinkRepo) LinkService {
	clientRepo := newFakeClientRepo(models.Client{ID: "c1", Name: "Bar"})
	operatorRepo := newFakeOperatorRepo(models.Operator{ID: "o1", Name: "João"})
	return NewLinkService(linkRepo, clientRepo, operatorRepo, nil)
}

func TestCreateLink(t *testing.T) {
	linkRepo := &fakeLinkRepo{}
	svc := newTestLinkService(linkRepo)

	link, err := svc.CreateLink(CreateLinkRequest{ClientID: "c1", OperatorID: "o1"})
	require.NoError(t, err)

	assert.NotEmpty(t, link.ID)
	assert.Equal(t, "c1", link.ClientID)
	assert.Equal(t, "o1", link.OperatorID)
	assert.Len(t, linkRepo.links, 1)
}

func TestCreateLink_DuplicatePair(t *testing.T) {
	svc := newTestLinkService(&fakeLinkRepo{})

	_, err := svc.CreateLink(CreateLinkRequest{ClientID: "c1", OperatorID: "o1"})
	require.NoError(t, err)

	_, err = svc.CreateLink(CreateLinkRequest{ClientID: "c1", OperatorID: "o1"})
	assert.ErrorIs(t, err, ErrLinkExists)
}

func TestCreateLink_UnknownReferences(t *testing.T) {
	svc := newTestLinkService(&fakeLinkRepo{})

	_, err := svc.CreateLink(CreateLinkRequest{ClientID: "ghost", OperatorID: "o1"})
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.CreateLink(CreateLinkRequest{ClientID: "c1", OperatorID: "ghost"})
	assert.ErrorIs(t, err, ErrOperatorNotFound)
}

func TestDeleteLink(t *testing.T) {
	linkRepo := &fakeLinkRepo{links: []models.ClientOperatorLink{{ID: "l1", ClientID: "c1", OperatorID: "o1"}}}
	svc := newTestLinkService(linkRepo)

	require.NoError(t, svc.DeleteLink("l1"))
	assert.Empty(t, linkRepo.links)

	assert.ErrorIs(t, svc.DeleteLink("l1"), ErrLinkNotFound)
}
