package mocks

//go:generate mockery --name SnapshotStore --srcpkg github.com/aevon-lab/rental-analytics/internal/aggregation --output ./aggregation --outpkg aggregationmocks --with-expecter
//go:generate mockery --name FleetStore --srcpkg github.com/aevon-lab/rental-analytics/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
