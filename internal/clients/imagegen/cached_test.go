package imagegen_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/card-forge/internal/clients/imagegen"
	imagegenmock "github.com/KirkDiggler/card-forge/internal/clients/imagegen/mock"
	"github.com/KirkDiggler/card-forge/internal/errors"
	imagecache "github.com/KirkDiggler/card-forge/internal/repositories/image_cache"
	imagecachemock "github.com/KirkDiggler/card-forge/internal/repositories/image_cache/mock"
)

type CachedTestSuite struct {
	suite.Suite

	ctrl     *gomock.Controller
	mockNext *imagegenmock.MockClient
	mockRepo *imagecachemock.MockRepository
	client   imagegen.Client
	ctx      context.Context
}

func (s *CachedTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockNext = imagegenmock.NewMockClient(s.ctrl)
	s.mockRepo = imagecachemock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	client, err := imagegen.NewCached(&imagegen.CachedConfig{
		Client:     s.mockNext,
		Repository: s.mockRepo,
		TTL:        time.Hour,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *CachedTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CachedTestSuite) TestHitSkipsGeneration() {
	s.mockRepo.EXPECT().
		Get(s.ctx, imagecache.GetInput{Prompt: "fire wolf"}).
		Return(&imagecache.GetOutput{Image: &imagecache.CachedImage{Handle: "https://cdn/wolf.webp"}}, nil)

	handle, err := s.client.Generate(s.ctx, "fire wolf")
	s.Require().NoError(err)
	s.Equal("https://cdn/wolf.webp", handle)
}

func (s *CachedTestSuite) TestMissGeneratesAndStores() {
	gomock.InOrder(
		s.mockRepo.EXPECT().
			Get(s.ctx, imagecache.GetInput{Prompt: "water blade"}).
			Return(nil, errors.NotFound("image not found")),
		s.mockNext.EXPECT().
			Generate(s.ctx, "water blade").
			Return("data:image/webp;base64,abc", nil),
		s.mockRepo.EXPECT().
			Put(s.ctx, imagecache.PutInput{
				Prompt: "water blade",
				Handle: "data:image/webp;base64,abc",
				TTL:    time.Hour,
			}).
			Return(&imagecache.PutOutput{}, nil),
	)

	handle, err := s.client.Generate(s.ctx, "water blade")
	s.Require().NoError(err)
	s.Equal("data:image/webp;base64,abc", handle)
}

func (s *CachedTestSuite) TestCacheFailuresAreIgnored() {
	s.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))
	s.mockNext.EXPECT().Generate(gomock.Any(), "earth relic").Return("https://cdn/relic.webp", nil)
	s.mockRepo.EXPECT().Put(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	handle, err := s.client.Generate(s.ctx, "earth relic")
	s.Require().NoError(err)
	s.Equal("https://cdn/relic.webp", handle)
}

func (s *CachedTestSuite) TestGenerationFailureIsNotCached() {
	s.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("image not found"))
	s.mockNext.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return("", errors.ImageGeneration("horde faulted"))

	_, err := s.client.Generate(s.ctx, "shadow cloak")
	s.Require().Error(err)
	s.True(errors.IsImageGeneration(err))
}

func (s *CachedTestSuite) TestNewCached_RequiresDependencies() {
	_, err := imagegen.NewCached(&imagegen.CachedConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestCachedTestSuite(t *testing.T) {
	suite.Run(t, new(CachedTestSuite))
}
