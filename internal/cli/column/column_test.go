package column

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/testutil"
	clitest "github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestCreateColumnCommand(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	t.Run("human output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Backlog"})
		require.NoError(t, err)
		assert.Contains(t, output, "Column 'Backlog' created successfully")
	})

	t.Run("json output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Review", "--json"})
		require.NoError(t, err)

		env := clitest.ParseJSON[models.Column](t, output)
		assert.True(t, env.Success)
		assert.Equal(t, "Review", env.Data.Title)
		assert.Equal(t, 1, env.Data.PositionIndex)
	})

	t.Run("quiet output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{"--title", "Done", "--quiet"})
		require.NoError(t, err)

		id, err := strconv.Atoi(output[:len(output)-1])
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, testutil.ColumnPositions(t, db))
		assert.Equal(t, id, testutil.ColumnOrder(t, db)[2])
	})
}

func TestCreateColumnCommand_Validation(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"empty title", []string{"--title", ""}, "Column title is required."},
		{"whitespace title", []string{"--title", "   "}, "Column title is required."},
		{"title too long", []string{"--title", strings.Repeat("x", 121)}, "Column title must be 120 characters or fewer."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
			assert.Contains(t, output, tt.wantMsg)
		})
	}
}

func TestCreateColumnCommand_MissingTitleFlag(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
}

func TestListColumnCommand(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	t.Run("empty board", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "No columns found")

		output, err = clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)
		env := clitest.ParseJSON[[]models.ColumnWithCards](t, output)
		assert.True(t, env.Success)
		assert.Empty(t, env.Data)
	})

	todo := testutil.CreateTestColumn(t, db, "To Do")
	doing := testutil.CreateTestColumn(t, db, "Doing")
	testutil.CreateTestCard(t, db, todo, "Write docs")

	t.Run("human output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "TITLE")
		assert.Contains(t, output, "To Do")
		assert.Contains(t, output, "Doing")
	})

	t.Run("json output includes cards", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)

		env := clitest.ParseJSON[[]models.ColumnWithCards](t, output)
		require.Len(t, env.Data, 2)
		assert.Equal(t, todo, env.Data[0].ID)
		require.Len(t, env.Data[0].Cards, 1)
		assert.Equal(t, "Write docs", env.Data[0].Cards[0].Title)
		assert.Equal(t, doing, env.Data[1].ID)
		assert.NotNil(t, env.Data[1].Cards)
		assert.Empty(t, env.Data[1].Cards)
	})

	t.Run("quiet output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(todo)+"\n"+strconv.Itoa(doing)+"\n", output)
	})
}

func TestUpdateColumnCommand(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	id := testutil.CreateTestColumn(t, db, "Doing")

	output, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", strconv.Itoa(id), "--title", "In Progress", "--json"})
	require.NoError(t, err)
	env := clitest.ParseJSON[models.Column](t, output)
	assert.Equal(t, "In Progress", env.Data.Title)

	t.Run("unknown column", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", "999", "--title", "X", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

		env := clitest.ParseJSON[any](t, output)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
		assert.Equal(t, "Column not found.", env.Error.Message)
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, UpdateCmd(), []string{"--id", strconv.Itoa(id), "--title", " "})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	})
}

func TestDeleteColumnCommand(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	first := testutil.CreateTestColumn(t, db, "First")
	second := testutil.CreateTestColumn(t, db, "Second")
	third := testutil.CreateTestColumn(t, db, "Third")
	testutil.CreateTestCard(t, db, second, "Doomed card")

	t.Run("declined confirmation keeps the column", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{"--id", strconv.Itoa(second)}, "n\n")
		require.NoError(t, err)
		assert.Contains(t, output, "1 card(s)")
		assert.Contains(t, output, "Cancelled")
		assert.Equal(t, []int{first, second, third}, testutil.ColumnOrder(t, db))
	})

	t.Run("confirmed delete renormalizes", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommandWithInput(t, app, DeleteCmd(), []string{"--id", strconv.Itoa(second)}, "yes\n")
		require.NoError(t, err)
		assert.Contains(t, output, "deleted successfully")
		assert.Equal(t, []int{first, third}, testutil.ColumnOrder(t, db))
		assert.Equal(t, []int{0, 1}, testutil.ColumnPositions(t, db))
		assert.Empty(t, testutil.CardOrder(t, db, second))
	})

	t.Run("force skips confirmation", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", strconv.Itoa(first), "--force"})
		require.NoError(t, err)
		assert.Equal(t, []int{third}, testutil.ColumnOrder(t, db))
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"--id", "999", "--force"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})
}

func TestReorderColumnCommand(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	a := testutil.CreateTestColumn(t, db, "A")
	b := testutil.CreateTestColumn(t, db, "B")
	c := testutil.CreateTestColumn(t, db, "C")

	output, err := clitest.ExecuteCLICommand(t, app, ReorderCmd(), []string{strconv.Itoa(c), strconv.Itoa(a) + "," + strconv.Itoa(b)})
	require.NoError(t, err)
	assert.Contains(t, output, "C → A → B")
	assert.Equal(t, []int{c, a, b}, testutil.ColumnOrder(t, db))

	t.Run("json with unknown id", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ReorderCmd(), []string{"999", strconv.Itoa(b), "--json"})
		require.NoError(t, err)

		env := clitest.ParseJSON[struct {
			Status string `json:"status"`
			Order  []int  `json:"order"`
		}](t, output)
		assert.Equal(t, "ok", env.Data.Status)
		// b takes its listed slot (index 1) and wins the tie with a
		assert.Equal(t, []int{c, b, a}, env.Data.Order)
		assert.Equal(t, []int{0, 1, 2}, testutil.ColumnPositions(t, db))
	})

	t.Run("empty list", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ReorderCmd(), nil)
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
		assert.Contains(t, output, "ordered_ids must be a non-empty list.")
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ReorderCmd(), []string{"abc"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}
