package mock_repository

//go:generate mockgen -source=../repository.go -destination=mock_repository.go -package=mock_repository
