package vehicle

import (
	"errors"
	"testing"

	"fixv/models"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	vehicles map[string]models.Vehicle
}

func (f *fakeRepo) GetByID(id string) (*models.Vehicle, error) {
	if v, ok := f.vehicles[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (f *fakeRepo) ListByOwner(ownerID string) ([]models.Vehicle, error) {
	var out []models.Vehicle
	for _, v := range f.vehicles {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeRepo) Create(v *models.Vehicle) error {
	f.vehicles[v.ID] = *v
	return nil
}

func (f *fakeRepo) Update(v *models.Vehicle) error {
	f.vehicles[v.ID] = *v
	return nil
}

func (f *fakeRepo) Delete(id string) error {
	delete(f.vehicles, id)
	return nil
}

func newTestService() (*DefaultVehicleService, *fakeRepo) {
	repo := &fakeRepo{vehicles: map[string]models.Vehicle{}}
	return &DefaultVehicleService{Repo: repo}, repo
}

func TestAddAndListVehicles(t *testing.T) {
	svc, _ := newTestService()

	v, err := svc.AddVehicle("user-1", VehicleRequest{Make: "Toyota", Model: "Corolla", Year: 2019})
	require.NoError(t, err)
	require.NotEmpty(t, v.ID)
	require.Equal(t, "user-1", v.OwnerID)

	vehicles, err := svc.ListVehicles("user-1")
	require.NoError(t, err)
	require.Len(t, vehicles, 1)

	vehicles, err = svc.ListVehicles("user-2")
	require.NoError(t, err)
	require.Empty(t, vehicles)
}

func TestVehicleOwnerScoping(t *testing.T) {
	svc, repo := newTestService()
	repo.vehicles["veh-1"] = models.Vehicle{ID: "veh-1", OwnerID: "user-1", Model: "Corolla"}

	_, err := svc.GetVehicle("user-2", "veh-1")
	var notOwner NotOwnerError
	require.ErrorAs(t, err, &notOwner)

	err = svc.DeleteVehicle("user-2", "veh-1")
	require.ErrorAs(t, err, &notOwner)
	require.Contains(t, repo.vehicles, "veh-1")

	_, err = svc.UpdateVehicle("user-2", "veh-1", VehicleRequest{Make: "Honda", Model: "Civic"})
	require.ErrorAs(t, err, &notOwner)

	v, err := svc.GetVehicle("user-1", "veh-1")
	require.NoError(t, err)
	require.Equal(t, "Corolla", v.Model)
}

func TestVehicleNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetVehicle("user-1", "veh-missing")
	var notFound VehicleNotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestUpdateVehicle(t *testing.T) {
	svc, repo := newTestService()
	repo.vehicles["veh-1"] = models.Vehicle{ID: "veh-1", OwnerID: "user-1", Model: "Corolla", Mileage: 42000}

	v, err := svc.UpdateVehicle("user-1", "veh-1", VehicleRequest{
		Make: "Toyota", Model: "Corolla", Year: 2019, Mileage: 48000, LicensePlate: "KDA 123X",
	})
	require.NoError(t, err)
	require.Equal(t, 48000, v.Mileage)
	require.Equal(t, "KDA 123X", repo.vehicles["veh-1"].LicensePlate)
}
