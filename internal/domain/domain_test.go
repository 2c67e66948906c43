package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestPriceAdjustment_Apply(t *testing.T) {
	tests := []struct {
		name string
		adj  PriceAdjustment
		in   int64
		want int64
	}{
		{
			name: "fixed increase",
			adj:  PriceAdjustment{Type: AdjustmentFixed, Value: 1000, Direction: DirectionIncrease},
			in:   30000,
			want: 31000,
		},
		{
			name: "percent decrease",
			adj:  PriceAdjustment{Type: AdjustmentPercent, Value: 10, Direction: DirectionDecrease},
			in:   30000,
			want: 27000,
		},
		{
			name: "percent rounds to nearest won",
			adj:  PriceAdjustment{Type: AdjustmentPercent, Value: 3, Direction: DirectionDecrease},
			in:   12345,
			want: 11975, // 11974.65
		},
		{
			name: "fixed decrease clamps at zero",
			adj:  PriceAdjustment{Type: AdjustmentFixed, Value: 5000, Direction: DirectionDecrease},
			in:   3000,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.adj.Validate())
			assert.Equal(t, tt.want, tt.adj.Apply(tt.in))
		})
	}
}

func TestPriceAdjustment_Validate(t *testing.T) {
	bad := []PriceAdjustment{
		{Type: "ratio", Value: 1, Direction: DirectionIncrease},
		{Type: AdjustmentFixed, Value: 1, Direction: "sideways"},
		{Type: AdjustmentFixed, Value: 0, Direction: DirectionIncrease},
		{Type: AdjustmentFixed, Value: -5, Direction: DirectionIncrease},
		{Type: AdjustmentFixed, Value: math.NaN(), Direction: DirectionIncrease},
		{Type: AdjustmentPercent, Value: 150, Direction: DirectionDecrease},
		{Type: AdjustmentFixed, Value: 1e19, Direction: DirectionIncrease},
		{Type: AdjustmentFixed, Value: MaxFixedAdjustment + 1, Direction: DirectionIncrease},
	}

	for _, adj := range bad {
		assert.ErrorIs(t, adj.Validate(), ErrInvalidAdjustment, "%+v", adj)
	}

	limit := PriceAdjustment{Type: AdjustmentFixed, Value: MaxFixedAdjustment, Direction: DirectionIncrease}
	require.NoError(t, limit.Validate())
	assert.Equal(t, int64(30000+MaxFixedAdjustment), limit.Apply(30000))
}

func TestPriceAdjustment_ApplySaturates(t *testing.T) {
	huge := PriceAdjustment{Type: AdjustmentFixed, Value: 1e19, Direction: DirectionIncrease}
	assert.Equal(t, int64(math.MaxInt64), huge.Apply(30000))

	hugeDown := PriceAdjustment{Type: AdjustmentFixed, Value: 1e19, Direction: DirectionDecrease}
	assert.Equal(t, int64(0), hugeDown.Apply(30000))
}

func TestDefaultWeeklyTemplate(t *testing.T) {
	tpl := DefaultWeeklyTemplate()
	require.NoError(t, tpl.Validate())

	assert.False(t, tpl.Day(time.Sunday).IsWorking)
	assert.False(t, tpl.Day(time.Monday).IsWorking)

	for _, day := range []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		hours := tpl.Day(day)
		assert.True(t, hours.IsWorking, day.String())
		assert.Equal(t, types.TimeString("09:00"), hours.Start)
		assert.Equal(t, types.TimeString("18:00"), hours.End)
		assert.Equal(t, types.TimeString("12:00"), *hours.LunchStart)
		assert.Equal(t, types.TimeString("13:00"), *hours.LunchEnd)
	}

	sat := tpl.Day(time.Saturday)
	assert.True(t, sat.IsWorking)
	assert.Equal(t, types.TimeString("10:00"), sat.Start)
	assert.Equal(t, types.TimeString("17:00"), sat.End)
	assert.True(t, sat.InLunch("12:30"))
	assert.True(t, sat.InLunch("13:00"))
	assert.False(t, sat.InLunch("13:30"))
	assert.False(t, sat.InLunch("12:00"))
}

func TestDefaultWeeklyTemplate_Independent(t *testing.T) {
	a := DefaultWeeklyTemplate()
	b := DefaultWeeklyTemplate()

	*a[time.Tuesday].LunchStart = "11:00"
	assert.Equal(t, types.TimeString("12:00"), *b[time.Tuesday].LunchStart)
	assert.Equal(t, types.TimeString("12:00"), *a[time.Wednesday].LunchStart)
}

func TestWorkingHours_Validate(t *testing.T) {
	lunch := types.TimeString("19:00")
	end := types.TimeString("20:00")

	hours := WorkingHours{IsWorking: true, Start: "09:00", End: "18:00", LunchStart: &lunch, LunchEnd: &end}
	assert.Error(t, hours.Validate())

	hours = WorkingHours{IsWorking: true, Start: "18:00", End: "09:00"}
	assert.Error(t, hours.Validate())

	hours = WorkingHours{IsWorking: true, Start: "09:00", End: "18:00", LunchStart: &lunch}
	assert.Error(t, hours.Validate())

	assert.NoError(t, WorkingHours{}.Validate())
}

func TestAppointment_Derived(t *testing.T) {
	amount := int64(50000)
	a := &Appointment{
		StartTime: "10:00",
		Services: []AppointmentService{
			{ServiceID: 3, Name: "커트", DurationMinutes: 30, Price: 20000},
			{ServiceID: 5, Name: "염색", DurationMinutes: 90, Price: 60000},
		},
		Status: AppointmentScheduled,
	}

	end, err := a.DerivedEndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("12:00"), end)
	assert.Equal(t, 120, a.TotalDuration())
	assert.Equal(t, int64(80000), a.Price())
	assert.Equal(t, int64(3), a.PrimaryServiceID())
	assert.True(t, a.IsActive())

	a.Amount = &amount
	assert.Equal(t, int64(50000), a.Price())

	a.Status = AppointmentNoShow
	assert.False(t, a.IsActive())
}

func TestValidationErrors(t *testing.T) {
	v := ValidationErrors{}
	assert.NoError(t, v.Err())

	ValidateName(v, "name", "  ")
	ValidatePhone(v, "phone", "12345")
	ValidatePositive(v, "price", 0)
	v.Add("name", "second message is ignored")

	err := v.Err()
	require.Error(t, err)

	var verr ValidationErrors
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr, 3)
	assert.Equal(t, "обязательное поле", verr["name"])
	assert.Equal(t, "validation failed: name: обязательное поле; phone: некорректный формат телефона; price: значение должно быть больше нуля", err.Error())
}

func TestPhonePattern(t *testing.T) {
	for _, ok := range []string{"010-1234-5678", "01012345678", "02-123-4567"} {
		assert.True(t, PhonePattern.MatchString(ok), ok)
	}
	for _, bad := range []string{"1234", "010-12-34", "+82 10 1234 5678"} {
		assert.False(t, PhonePattern.MatchString(bad), bad)
	}
}

func TestStaffPosition_Rank(t *testing.T) {
	order := []StaffPosition{PositionOwner, PositionManager, PositionSenior, PositionJunior, PositionIntern}
	for i := 1; i < len(order); i++ {
		assert.Greater(t, order[i-1].Rank(), order[i].Rank())
	}
	assert.False(t, StaffPosition("ceo").IsValid())
}
